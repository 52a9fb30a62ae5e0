package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/router"
	"github.com/evanlowell/growlab/internal/screen"
	"github.com/evanlowell/growlab/internal/ui/layout"
	"github.com/evanlowell/growlab/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []history.AttemptRecord
	Err      error
}

// HistoryScreen displays past attempts for the current user.
type HistoryScreen struct {
	store    *history.Store
	userID   string
	attempts []history.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *history.Store, userID string) *HistoryScreen {
	return &HistoryScreen{
		store:    store,
		userID:   userID,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.store.Attempts().List(context.Background(), s.userID)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Go grow something!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Format("Jan 02, 2006")

		quizStr := "quiz ✗"
		if a.QuizCorrect {
			quizStr = "quiz ✓"
		}

		modeStr := ""
		if a.Mode == history.ModeAI {
			modeStr = "  (advisor)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-12s Lv %d  %d pts  %s%s",
			prefix, dateStr, a.Crop, a.Difficulty, a.Points, quizStr, modeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s  ·  temp %g°C  rh %g%%  light %ghrs  co₂ %gppm  dli %g  ec %g  ph %g",
				catalog.LevelTitle(a.Difficulty),
				a.Sliders.Temp, a.Sliders.Humidity, a.Sliders.Light,
				a.Sliders.CO2, a.Sliders.DLI, a.Sliders.EC, a.Sliders.PH)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
			if len(a.Symptoms) > 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render("    symptoms: "+strings.Join(a.Symptoms, ", "))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
