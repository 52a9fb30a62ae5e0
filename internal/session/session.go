// Package session holds the per-player play state. Everything the original
// UI kept in ambient globals (current scenario, difficulty, start time)
// lives here so concurrent sessions and tests cannot interfere.
package session

import (
	"time"

	"github.com/evanlowell/growlab/internal/scenario"
	"github.com/evanlowell/growlab/internal/scoring"
)

// DefaultSliders are the slider positions every fresh scenario starts from.
// Deliberately not tuned to any crop; moving them is the game.
func DefaultSliders() scoring.Sliders {
	return scoring.Sliders{
		Temp:     25,
		Humidity: 60,
		Light:    12,
		CO2:      400,
		DLI:      20,
		EC:       1.0,
		PH:       6.0,
	}
}

// Session is one player's in-progress game state.
type Session struct {
	Level      int
	CropFilter []string
	Scenario   *scenario.Scenario
	Sliders    scoring.Sliders
	Answers    []string
	StartTime  time.Time
}

// New creates a session at the given difficulty with no active scenario.
func New(level int) *Session {
	return &Session{
		Level:   level,
		Sliders: DefaultSliders(),
	}
}

// Regenerate replaces the active scenario with a fresh one and resets the
// player's inputs and timer. The previous scenario is discarded.
func (s *Session) Regenerate(gen *scenario.Generator) error {
	sc, err := gen.Generate(s.Level, s.CropFilter)
	if err != nil {
		return err
	}
	s.Scenario = sc
	s.Sliders = DefaultSliders()
	s.Answers = make([]string, len(sc.Symptoms))
	s.StartTime = time.Now()
	return nil
}

// Attempt snapshots the player's current inputs for scoring.
func (s *Session) Attempt() scoring.Attempt {
	answers := make([]string, len(s.Answers))
	copy(answers, s.Answers)
	return scoring.Attempt{
		Sliders: s.Sliders,
		Answers: answers,
	}
}

// Score evaluates the current inputs against the active scenario.
// Returns nil when no scenario is active.
func (s *Session) Score() *scoring.Result {
	if s.Scenario == nil {
		return nil
	}
	return scoring.Score(s.Scenario.Crop, s.Scenario.Stressors, s.Scenario.Symptoms, s.Attempt())
}

// Elapsed returns whole seconds since the scenario was presented.
func (s *Session) Elapsed() int {
	if s.StartTime.IsZero() {
		return 0
	}
	return int(time.Since(s.StartTime).Seconds())
}
