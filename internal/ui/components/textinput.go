package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/compatquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a prompt label.
type TextInput struct {
	Label string
	Model textinput.Model
}

// NewTextInput creates a blurred text input. charLimit <= 0 means no limit.
func NewTextInput(label, placeholder string, charLimit int) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return &TextInput{Label: label, Model: ti}
}

// Update forwards msg to the underlying input.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return cmd
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t *TextInput) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current input value.
func (t *TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
}

// View renders the label above the input.
func (t *TextInput) View() string {
	label := theme.Body.Bold(true)
	if t.Model.Focused() {
		label = theme.Selected
	}
	return label.Render(t.Label) + "\n\n" + t.Model.View()
}
