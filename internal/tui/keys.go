package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by the wizards.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings. Letter keys are left out
// of Up and Down so they can be typed into text fields.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// InputHelpText returns help text for steps made of input fields.
func (k KeyMap) InputHelpText() string {
	return "↑/↓ field • tab complete path • enter continue • esc back"
}

// ReviewHelpText returns help text for the review step.
func (k KeyMap) ReviewHelpText(file string) string {
	return "enter save to " + file + " • esc back"
}
