package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/ui/theme"
)

// Gauge displays a horizontal fill bar, used for score summaries.
type Gauge struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewGauge creates a new gauge.
func NewGauge(label string, percent float64, showPercent bool, width int) Gauge {
	return Gauge{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string

	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if g.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := g.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * g.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.GaugeFilled.Render(strings.Repeat(" ", filled)) +
		theme.GaugeEmpty.Render(strings.Repeat(" ", empty))

	if g.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(g.Percent*100)))
	}

	return result
}
