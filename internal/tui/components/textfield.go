package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextField is a labeled text input. When a PathCompleter is attached, tab
// completes the value instead of being passed to the input.
type TextField struct {
	label     string
	input     textinput.Model
	focused   bool
	validator func(string) error
	completer *PathCompleter
	err       error
	styles    textFieldStyles
}

type textFieldStyles struct {
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Error        lipgloss.Style
}

// NewTextField creates a new text field.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 50

	return TextField{
		label: label,
		input: ti,
		styles: textFieldStyles{
			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			FocusedInput: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// WithValidator sets a validation function run on every change.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// WithCompleter enables tab completion of paths.
func (t TextField) WithCompleter(c *PathCompleter) TextField {
	t.completer = c
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
	if t.completer != nil {
		t.completer.Reset()
	}
}

// Update handles a message while the field is focused.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && t.completer != nil {
		if keyMsg.Type == tea.KeyTab {
			t.input.SetValue(t.completer.Next(t.input.Value()))
			t.input.CursorEnd()
			t.validate()
			return t, nil
		}
		t.completer.Reset()
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.validate()
	return t, cmd
}

// View renders the label, the input and any validation error.
func (t TextField) View() string {
	var b strings.Builder
	b.WriteString(t.styles.Label.Render(t.label))
	b.WriteString("\n")

	style := t.styles.Input
	if t.focused {
		style = t.styles.FocusedInput
	}
	b.WriteString(style.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Error.Render(t.err.Error()))
	}
	return b.String()
}

// Value returns the current value, trimmed.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

func (t *TextField) validate() {
	if t.validator != nil {
		t.err = t.validator(t.input.Value())
	}
}
