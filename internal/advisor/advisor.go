// Package advisor turns an LLM provider into a CEA consultant: it
// generates diagnostic scenario briefings and grades player
// recommendations against them.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/llm"
	"github.com/evanlowell/growlab/internal/scoring"
)

// ErrInvalidLevel is returned when a requested level is outside 1-6.
var ErrInvalidLevel = errors.New("invalid level (must be 1-6)")

// ErrMalformedInput is returned when an evaluation request is missing
// its scenario text or recommendation.
var ErrMalformedInput = errors.New("malformed evaluation input")

const (
	// Matches the generation settings the prompts were tuned with.
	promptTemperature = 0.7
	maxResponseTokens = 1024
)

// Advisor wraps an LLM provider with scenario and evaluation prompts.
type Advisor struct {
	provider llm.Provider
}

// New creates an Advisor backed by the given provider.
func New(p llm.Provider) *Advisor {
	return &Advisor{provider: p}
}

// RequestScenario asks the LLM for a free-text diagnostic scenario
// briefing at the given level. The briefing has four sections: crop and
// growing system, environmental conditions, observed symptoms, and the
// player's task.
func (a *Advisor) RequestScenario(ctx context.Context, level int) (string, error) {
	if !catalog.ValidLevel(level) {
		return "", ErrInvalidLevel
	}

	ctx = llm.WithPurpose(ctx, "scenario")
	resp, err := a.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: scenarioPrompt(level)},
		},
		MaxTokens:   maxResponseTokens,
		Temperature: promptTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate scenario: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// EvaluationInput carries a player's answer to an LLM-generated scenario.
type EvaluationInput struct {
	Level          int
	ScenarioText   string
	Sliders        scoring.Sliders
	Recommendation string
}

// RequestEvaluation asks the LLM to grade the player's slider settings
// and written recommendation against the scenario they were given.
func (a *Advisor) RequestEvaluation(ctx context.Context, in EvaluationInput) (string, error) {
	if in.ScenarioText == "" || in.Recommendation == "" {
		return "", ErrMalformedInput
	}

	ctx = llm.WithPurpose(ctx, "evaluation")
	resp, err := a.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: evaluationPrompt(in.Level, in.ScenarioText, in.Sliders, in.Recommendation)},
		},
		MaxTokens:   maxResponseTokens,
		Temperature: promptTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("evaluate recommendation: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// RequestStructuredScenario asks the LLM for a scenario as structured
// JSON instead of prose, for rendering inside the terminal UI. The
// provider validates the response against the consult schema before it
// is decoded.
func (a *Advisor) RequestStructuredScenario(ctx context.Context, level int) (*ConsultScenario, error) {
	if !catalog.ValidLevel(level) {
		return nil, ErrInvalidLevel
	}

	ctx = llm.WithPurpose(ctx, "consult-scenario")
	resp, err := a.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: scenarioPrompt(level)},
		},
		Schema:      consultScenarioSchema(),
		MaxTokens:   maxResponseTokens,
		Temperature: promptTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate structured scenario: %w", err)
	}

	var sc ConsultScenario
	if err := json.Unmarshal(resp.Content, &sc); err != nil {
		return nil, fmt.Errorf("decode structured scenario: %w", err)
	}
	sc.Level = level
	return &sc, nil
}
