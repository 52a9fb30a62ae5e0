package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/evanlowell/growlab/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", p.errMsg))
	}
	if p.phase == phaseLoading {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Preparing greenhouse...")
	}

	sc := p.sess.Scenario
	var b strings.Builder

	header := fmt.Sprintf("%s under stress", sc.Crop.Name)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + header))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Sensor readings"))
	b.WriteString("\n")
	for _, r := range sc.Env.Readings() {
		line := fmt.Sprintf("    %-14s %s", r.Label, r.Value)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Observed symptoms"))
	b.WriteString("\n")
	for _, sym := range sc.Symptoms {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("    – " + sym))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch p.phase {
	case phaseAdjust:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Set the environment"))
		b.WriteString("\n")
		for _, s := range p.sliders {
			b.WriteString("  " + s.View(width-4))
			b.WriteString("\n")
		}
	case phaseQuiz:
		if p.quizIdx < len(p.quiz) {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("  Diagnosis %d of %d", p.quizIdx+1, len(p.quiz))))
			b.WriteString("\n\n")
			b.WriteString(indent(p.quiz[p.quizIdx].View(), "  "))
		}
	}

	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
