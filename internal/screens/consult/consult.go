package consult

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/advisor"
	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/router"
	"github.com/evanlowell/growlab/internal/screen"
	"github.com/evanlowell/growlab/internal/scoring"
	"github.com/evanlowell/growlab/internal/ui/components"
	"github.com/evanlowell/growlab/internal/ui/layout"
	"github.com/evanlowell/growlab/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAdvise
	phaseEvaluating
	phaseFeedback
)

// sliderSpec configures one consult control. The advisor grades only
// the five environment sliders, not EC or pH.
type sliderSpec struct {
	label, unit    string
	value          float64
	min, max, step float64
}

var sliderSpecs = []sliderSpec{
	{"Temperature", "°C", 22, 10, 40, 1},
	{"Humidity", "%", 60, 20, 95, 5},
	{"Photoperiod", "hrs", 16, 0, 24, 1},
	{"CO₂", "ppm", 800, 200, 1600, 50},
	{"DLI", "mol/m²/day", 17, 0, 50, 1},
}

type scenarioReadyMsg struct {
	Scenario *advisor.ConsultScenario
	Err      error
}

type feedbackMsg struct {
	Feedback string
	Err      error
}

type attemptSavedMsg struct{ Err error }

// ConsultScreen runs one LLM-driven consult: the advisor describes a
// stressed grow, the player dials in a correction and writes a
// recommendation, and the advisor grades it.
type ConsultScreen struct {
	adv    *advisor.Advisor
	store  *history.Store
	userID string
	level  int

	phase    phase
	scenario *advisor.ConsultScenario
	sliders  []components.Slider
	input    components.TextArea
	focus    int // 0..len(sliders)-1 are sliders, len(sliders) is the textarea
	feedback string
	errMsg   string
	saveErr  error
}

var _ screen.Screen = (*ConsultScreen)(nil)
var _ screen.KeyHintProvider = (*ConsultScreen)(nil)
var _ screen.BadgeProvider = (*ConsultScreen)(nil)

// New creates a ConsultScreen at the given level.
func New(adv *advisor.Advisor, store *history.Store, userID string, level int) *ConsultScreen {
	return &ConsultScreen{
		adv:    adv,
		store:  store,
		userID: userID,
		level:  level,
		phase:  phaseLoading,
	}
}

func (c *ConsultScreen) Init() tea.Cmd {
	adv := c.adv
	level := c.level
	return func() tea.Msg {
		sc, err := adv.RequestStructuredScenario(context.Background(), level)
		return scenarioReadyMsg{Scenario: sc, Err: err}
	}
}

func (c *ConsultScreen) Title() string {
	return "Consult"
}

func (c *ConsultScreen) Badge() string {
	return fmt.Sprintf("Lv %d · %s", c.level, catalog.LevelTitle(c.level))
}

func (c *ConsultScreen) KeyHints() []layout.KeyHint {
	switch c.phase {
	case phaseAdvise:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select control"},
			{Key: "←→", Description: "Adjust"},
			{Key: "Tab", Description: "Recommendation"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (c *ConsultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scenarioReadyMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.scenario = msg.Scenario
		c.buildControls()
		c.phase = phaseAdvise
		return c, nil

	case feedbackMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			c.phase = phaseAdvise
			return c, nil
		}
		c.feedback = msg.Feedback
		c.phase = phaseFeedback
		return c, c.saveAttempt()

	case attemptSavedMsg:
		c.saveErr = msg.Err
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c, nil
}

func (c *ConsultScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.errMsg != "" && c.phase == phaseLoading {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch c.phase {
	case phaseAdvise:
		inTextArea := c.focus == len(c.sliders)

		switch msg.String() {
		case "tab":
			if inTextArea {
				c.setFocus(0)
			} else {
				c.setFocus(len(c.sliders))
			}
			return c, nil
		case "ctrl+s":
			return c.submit()
		}

		if inTextArea {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}

		switch msg.String() {
		case "up", "k":
			if c.focus > 0 {
				c.setFocus(c.focus - 1)
			}
			return c, nil
		case "down", "j":
			if c.focus < len(c.sliders) {
				c.setFocus(c.focus + 1)
			}
			return c, nil
		}

		var cmd tea.Cmd
		c.sliders[c.focus], cmd = c.sliders[c.focus].Update(msg)
		return c, cmd

	case phaseFeedback:
		if msg.String() == "enter" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return c, nil
}

// submit sends the slider settings and recommendation off for grading.
func (c *ConsultScreen) submit() (screen.Screen, tea.Cmd) {
	recommendation := strings.TrimSpace(c.input.Value())
	if recommendation == "" {
		c.errMsg = "Write a recommendation before submitting."
		return c, nil
	}
	c.errMsg = ""
	c.phase = phaseEvaluating

	adv := c.adv
	in := advisor.EvaluationInput{
		Level:          c.level,
		ScenarioText:   c.scenario.BriefingText(),
		Sliders:        c.sliderValues(),
		Recommendation: recommendation,
	}
	return c, func() tea.Msg {
		feedback, err := adv.RequestEvaluation(context.Background(), in)
		return feedbackMsg{Feedback: feedback, Err: err}
	}
}

// saveAttempt records the consult in history. Consult attempts carry no
// deterministic score.
func (c *ConsultScreen) saveAttempt() tea.Cmd {
	if c.store == nil {
		return nil
	}
	store := c.store
	userID := c.userID
	rec := history.AttemptRecord{
		Crop:       c.scenario.Crop,
		Difficulty: c.level,
		Sliders:    c.sliderValues(),
		Symptoms:   c.scenario.Symptoms,
		Mode:       history.ModeAI,
	}
	return func() tea.Msg {
		return attemptSavedMsg{Err: store.Attempts().Save(context.Background(), userID, rec)}
	}
}

func (c *ConsultScreen) buildControls() {
	c.sliders = make([]components.Slider, len(sliderSpecs))
	for i, s := range sliderSpecs {
		c.sliders[i] = components.NewSlider(s.label, s.unit, s.value, s.min, s.max, s.step)
	}
	c.input = components.NewTextArea("What would you change, and why?", 60, 5)
	c.setFocus(0)
}

func (c *ConsultScreen) setFocus(i int) {
	if c.focus < len(c.sliders) {
		c.sliders[c.focus].Focused = false
	} else {
		c.input.Blur()
	}
	c.focus = i
	if c.focus < len(c.sliders) {
		c.sliders[c.focus].Focused = true
	} else {
		c.input.Focus()
	}
}

func (c *ConsultScreen) sliderValues() scoring.Sliders {
	return scoring.Sliders{
		Temp:     c.sliders[0].Value,
		Humidity: c.sliders[1].Value,
		Light:    c.sliders[2].Value,
		CO2:      c.sliders[3].Value,
		DLI:      c.sliders[4].Value,
	}
}

func (c *ConsultScreen) View(width, height int) string {
	if c.phase == phaseLoading {
		msg := "Consulting the advisor..."
		if c.errMsg != "" {
			return lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", c.errMsg))
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n" + msg)
	}

	if c.phase == phaseEvaluating {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nGrading your recommendation...")
	}

	if c.phase == phaseFeedback {
		return c.feedbackView(width)
	}

	return c.adviseView(width)
}

func (c *ConsultScreen) adviseView(width int) string {
	var b strings.Builder
	sc := c.scenario

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(
		fmt.Sprintf("%s · %s", sc.Crop, sc.GrowingSystem)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render("  Current conditions"))
	b.WriteString("\n")
	for _, r := range sc.Environment {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %-16s %s", r.Name, r.Value)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  Observed symptoms"))
	b.WriteString("\n")
	for _, s := range sc.Symptoms {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  – " + s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  Your correction"))
	b.WriteString("\n")
	for _, s := range c.sliders {
		b.WriteString(s.View(width - 4))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  Your recommendation"))
	b.WriteString("\n")
	b.WriteString(indent(c.input.View(), "  "))
	b.WriteString("\n")

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + c.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (c *ConsultScreen) feedbackView(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Advisor feedback"))
	b.WriteString("\n\n")

	wrapped := lipgloss.NewStyle().Width(width - 8).Foreground(theme.Text).Render(c.feedback)
	b.WriteString(indent(wrapped, "    "))
	b.WriteString("\n")

	if c.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("    Could not save this attempt: %v", c.saveErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("    Press Enter to return home."))
	b.WriteString("\n")

	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
