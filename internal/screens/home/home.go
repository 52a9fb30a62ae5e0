package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/advisor"
	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/router"
	"github.com/evanlowell/growlab/internal/scenario"
	"github.com/evanlowell/growlab/internal/screen"
	"github.com/evanlowell/growlab/internal/screens/consult"
	historyscreen "github.com/evanlowell/growlab/internal/screens/history"
	"github.com/evanlowell/growlab/internal/screens/play"
	"github.com/evanlowell/growlab/internal/ui/components"
	"github.com/evanlowell/growlab/internal/ui/layout"
	"github.com/evanlowell/growlab/internal/ui/theme"
)

// cropFilters are the crop restrictions the player can cycle through.
var cropFilters = []string{"all", "Lettuce", "Tomato", "Cannabis", "Strawberries"}

// HomeScreen is the main menu: level and crop selection plus navigation.
type HomeScreen struct {
	menu       components.Menu
	generator  *scenario.Generator
	store      *history.Store
	adv        *advisor.Advisor
	userID     string
	level      int
	cropFilter int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.BadgeProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. adv may be nil when no LLM provider is
// configured; the consult entry is disabled in that case.
func New(generator *scenario.Generator, store *history.Store, adv *advisor.Advisor, userID string) *HomeScreen {
	h := &HomeScreen{
		generator: generator,
		store:     store,
		adv:       adv,
		userID:    userID,
		level:     catalog.MinLevel,
	}

	items := []components.MenuItem{
		{Label: "PLAY SCENARIO", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: play.New(h.generator, h.store, h.userID, h.level, h.filter()),
				}
			}
		}},
		{Label: "CONSULT THE ADVISOR", Disabled: adv == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: consult.New(h.adv, h.store, h.userID, h.level),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(h.store, h.userID),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) filter() []string {
	if cropFilters[h.cropFilter] == "all" {
		return nil
	}
	return []string{cropFilters[h.cropFilter]}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Badge() string {
	return fmt.Sprintf("Lv %d · %s", h.level, catalog.LevelTitle(h.level))
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Level"},
		{Key: "C", Description: "Crop"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if h.level > catalog.MinLevel {
				h.level--
			}
			return h, nil
		case "right", "l":
			if h.level < catalog.MaxLevel {
				h.level++
			}
			return h, nil
		case "c":
			h.cropFilter = (h.cropFilter + 1) % len(cropFilters)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Diagnose crop stress. Dial in the environment. Level up."))

	levelLine := fmt.Sprintf("◀  Level %d · %s  ▶", h.level, catalog.LevelTitle(h.level))
	cropLine := fmt.Sprintf("Crop: %s  (press C to change)", cropFilters[h.cropFilter])
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(levelLine)),
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(cropLine)))

	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
