package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/router"
	"github.com/evanlowell/growlab/internal/scoring"
	"github.com/evanlowell/growlab/internal/screen"
	"github.com/evanlowell/growlab/internal/session"
	"github.com/evanlowell/growlab/internal/ui/components"
	"github.com/evanlowell/growlab/internal/ui/layout"
	"github.com/evanlowell/growlab/internal/ui/theme"
)

// attemptSavedMsg reports the outcome of persisting the attempt.
type attemptSavedMsg struct {
	Err error
}

// ResultsScreen shows the scored attempt and saves it to history.
type ResultsScreen struct {
	sess    *session.Session
	result  *scoring.Result
	store   *history.Store
	userID  string
	done    components.Button
	saveErr string
	saved   bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a scored session.
func New(sess *session.Session, result *scoring.Result, store *history.Store, userID string) *ResultsScreen {
	return &ResultsScreen{
		sess:   sess,
		result: result,
		store:  store,
		userID: userID,
		done: components.NewButton("BACK TO MENU", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.store == nil {
		return nil
	}
	return func() tea.Msg {
		err := r.store.Attempts().Save(context.Background(), r.userID, history.AttemptRecord{
			Crop:        r.sess.Scenario.Crop.Name,
			Points:      r.result.TotalPoints,
			QuizCorrect: r.result.QuizCorrect(),
			Difficulty:  r.sess.Level,
			Sliders:     r.sess.Sliders,
			Symptoms:    r.sess.Scenario.Symptoms,
			Mode:        history.ModeGenerated,
		})
		return attemptSavedMsg{Err: err}
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		if msg.Err != nil {
			r.saveErr = msg.Err.Error()
		} else {
			r.saved = true
		}
		return r, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		r.done, cmd = r.done.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	maxPoints := len(catalog.CoreParams()) + 2*len(r.result.Symptoms)
	verdict := theme.Correct
	if !r.result.Passed {
		verdict = theme.Incorrect
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		verdict.Render(fmt.Sprintf("%s — %d / %d points", r.result.Verdict(), r.result.TotalPoints, maxPoints))))
	b.WriteString("\n")

	gauge := components.NewGauge("", float64(r.result.TotalPoints)/float64(maxPoints), false, width/2)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gauge.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Environment"))
	b.WriteString("\n")
	for _, pr := range r.result.Params {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !pr.InRange {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		line := fmt.Sprintf("  %s %-14s %g %s  (optimal %s)",
			mark, pr.Param.DisplayName(), pr.Value, pr.Param.Unit(), pr.OptimalText)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
		if pr.Explanation != "" {
			b.WriteString(theme.Hint.Render("      " + pr.Explanation))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Diagnosis"))
	b.WriteString("\n")
	for _, sr := range r.result.Symptoms {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !sr.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		answer := sr.Answer
		if answer == "" {
			answer = "(no answer)"
		}
		b.WriteString(fmt.Sprintf("  %s %s → %s", mark, sr.Symptom, answer))
		b.WriteString("\n")
		if !sr.Correct {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("      True cause: %s. %s", sr.TrueCause, sr.WrongedSymptom)))
			b.WriteString("\n")
		}
	}

	if r.saveErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  Could not save attempt: " + r.saveErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.done.View()))
	b.WriteString("\n")

	return b.String()
}
