package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with CAprep styling and a per-field
// validation error line, the way the backend reports registration errors.
type TextInput struct {
	Model    textinput.Model
	Label    string
	fieldErr string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// NewPasswordInput creates a text input that masks typed characters.
func NewPasswordInput(label, placeholder string, maxLen int) TextInput {
	ti := NewTextInput(label, placeholder, maxLen)
	ti.Model.EchoMode = textinput.EchoPassword
	ti.Model.EchoCharacter = '•'
	return ti
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus focuses the input and clears any stale field error.
func (t *TextInput) Focus() tea.Cmd {
	t.fieldErr = ""
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetError attaches a validation message shown under the field.
func (t *TextInput) SetError(msg string) {
	t.fieldErr = msg
}

// ClearError removes the validation message.
func (t *TextInput) ClearError() {
	t.fieldErr = ""
}

// View renders the labeled input with its error line, if any.
func (t TextInput) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Model.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	s := labelStyle.Render(t.Label) + "\n" + t.Model.View()
	if t.fieldErr != "" {
		s += "\n" + theme.FieldError.Render("  "+t.fieldErr)
	}
	return s
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
