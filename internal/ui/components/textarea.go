package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for free-form recommendation input.
type TextArea struct {
	Model   textarea.Model
	Focused bool
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.CharLimit = 1000

	return TextArea{Model: ta}
}

// Focus gives the textarea keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	t.Focused = true
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Focused = false
	t.Model.Blur()
}

// Update handles messages while focused.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	if !t.Focused {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the textarea.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}
