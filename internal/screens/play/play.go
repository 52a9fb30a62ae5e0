package play

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/router"
	"github.com/evanlowell/growlab/internal/scenario"
	"github.com/evanlowell/growlab/internal/screen"
	"github.com/evanlowell/growlab/internal/screens/results"
	"github.com/evanlowell/growlab/internal/session"
	"github.com/evanlowell/growlab/internal/ui/components"
	"github.com/evanlowell/growlab/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAdjust
	phaseQuiz
)

// sliderRange describes the adjustable range for one slider.
type sliderRange struct {
	min, max, step float64
}

// sliderRanges bounds each control. Wide enough that every optimal
// range and every perturbed reading is reachable.
var sliderRanges = map[catalog.Param]sliderRange{
	catalog.ParamTemp:     {10, 40, 1},
	catalog.ParamHumidity: {20, 95, 5},
	catalog.ParamLight:    {0, 24, 1},
	catalog.ParamCO2:      {200, 1600, 50},
	catalog.ParamDLI:      {0, 50, 1},
	catalog.ParamEC:       {0.1, 4.0, 0.1},
	catalog.ParamPH:       {4.5, 8.0, 0.1},
}

// PlayScreen runs one generated scenario: adjust the environment, then
// answer the symptom quiz.
type PlayScreen struct {
	gen    *scenario.Generator
	store  *history.Store
	userID string

	sess    *session.Session
	phase   phase
	sliders []components.Slider
	focus   int
	quiz    []components.MultiChoice
	quizIdx int
	errMsg  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.BadgeProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for one scenario at the given level.
func New(gen *scenario.Generator, store *history.Store, userID string, level int, cropFilter []string) *PlayScreen {
	sess := session.New(level)
	sess.CropFilter = cropFilter
	return &PlayScreen{
		gen:    gen,
		store:  store,
		userID: userID,
		sess:   sess,
		phase:  phaseLoading,
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return scenarioReadyMsg{Err: p.sess.Regenerate(p.gen)}
	}
}

func (p *PlayScreen) Title() string {
	return "Scenario"
}

func (p *PlayScreen) Badge() string {
	return fmt.Sprintf("Lv %d · %s", p.sess.Level, catalog.LevelTitle(p.sess.Level))
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseAdjust:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select control"},
			{Key: "←→", Description: "Adjust"},
			{Key: "Enter", Description: "Diagnose"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuiz:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select cause"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scenarioReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.buildSliders()
		p.phase = phaseAdjust
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch p.phase {
	case phaseAdjust:
		switch msg.String() {
		case "up", "k":
			if p.focus > 0 {
				p.setFocus(p.focus - 1)
			}
			return p, nil
		case "down", "j":
			if p.focus < len(p.sliders)-1 {
				p.setFocus(p.focus + 1)
			}
			return p, nil
		case "enter":
			p.captureSliders()
			p.buildQuiz()
			p.phase = phaseQuiz
			return p, nil
		}

		var cmd tea.Cmd
		p.sliders[p.focus], cmd = p.sliders[p.focus].Update(msg)
		return p, cmd

	case phaseQuiz:
		if p.quizIdx >= len(p.quiz) {
			return p, nil
		}
		var cmd tea.Cmd
		p.quiz[p.quizIdx], cmd = p.quiz[p.quizIdx].Update(msg)
		if p.quiz[p.quizIdx].Submitted {
			p.sess.Answers[p.quizIdx] = p.quiz[p.quizIdx].Chosen()
			p.quizIdx++
			if p.quizIdx >= len(p.quiz) {
				return p.finish()
			}
		}
		return p, cmd
	}

	return p, nil
}

// finish scores the attempt and moves to the results screen.
func (p *PlayScreen) finish() (screen.Screen, tea.Cmd) {
	result := p.sess.Score()
	sess := p.sess
	store := p.store
	userID := p.userID
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(sess, result, store, userID),
		}
	}
}

// buildSliders creates one control per core parameter, seeded from the
// session defaults.
func (p *PlayScreen) buildSliders() {
	params := catalog.CoreParams()
	p.sliders = make([]components.Slider, len(params))
	for i, param := range params {
		r := sliderRanges[param]
		p.sliders[i] = components.NewSlider(
			param.DisplayName(), param.Unit(),
			p.sess.Sliders.For(param), r.min, r.max, r.step,
		)
	}
	p.setFocus(0)
}

func (p *PlayScreen) setFocus(i int) {
	p.sliders[p.focus].Focused = false
	p.focus = i
	p.sliders[p.focus].Focused = true
}

// captureSliders copies slider positions back into the session.
func (p *PlayScreen) captureSliders() {
	for i, param := range catalog.CoreParams() {
		v := p.sliders[i].Value
		switch param {
		case catalog.ParamTemp:
			p.sess.Sliders.Temp = v
		case catalog.ParamHumidity:
			p.sess.Sliders.Humidity = v
		case catalog.ParamLight:
			p.sess.Sliders.Light = v
		case catalog.ParamCO2:
			p.sess.Sliders.CO2 = v
		case catalog.ParamDLI:
			p.sess.Sliders.DLI = v
		case catalog.ParamEC:
			p.sess.Sliders.EC = v
		case catalog.ParamPH:
			p.sess.Sliders.PH = v
		}
	}
}

// buildQuiz creates one multiple-choice question per observed symptom.
// The correct index is hidden; answers are graded by the scorer.
func (p *PlayScreen) buildQuiz() {
	sc := p.sess.Scenario
	p.quiz = make([]components.MultiChoice, len(sc.Symptoms))
	for i, symptom := range sc.Symptoms {
		options := p.gen.QuizOptions(sc, symptom)
		question := fmt.Sprintf("What is causing “%s”?", symptom)
		p.quiz[i] = components.NewMultiChoice(question, options, -1)
	}
	p.quizIdx = 0
}
