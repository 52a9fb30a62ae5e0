package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/ui/theme"
)

// Slider is a horizontal value adjuster driven by left/right keys.
type Slider struct {
	Label   string
	Unit    string
	Value   float64
	Min     float64
	Max     float64
	Step    float64
	Focused bool
}

// NewSlider creates a slider over [min, max] starting at value.
func NewSlider(label, unit string, value, min, max, step float64) Slider {
	return Slider{
		Label: label,
		Unit:  unit,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
	}
}

// Update handles left/right adjustment when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
		if s.Value < s.Min {
			s.Value = s.Min
		}
	case "right", "l":
		s.Value += s.Step
		if s.Value > s.Max {
			s.Value = s.Max
		}
	}

	return s, nil
}

// View renders the slider as a gauge with its current value.
func (s Slider) View(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	prefix := "  "
	if s.Focused {
		prefix = "▸ "
	}

	label := fmt.Sprintf("%s%-14s", prefix, s.Label)
	value := fmt.Sprintf(" %g %s", s.Value, s.Unit)

	barWidth := width - lipgloss.Width(label) - lipgloss.Width(value) - 4
	if barWidth < 8 {
		barWidth = 8
	}

	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := theme.GaugeFilled.Render(strings.Repeat(" ", filled)) +
		theme.GaugeEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return labelStyle.Render(label) + " " + bar + valueStyle.Render(value)
}
