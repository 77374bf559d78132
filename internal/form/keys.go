package form

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings active while the form is open.
type KeyMap struct {
	Submit  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-Tab", "prev"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close toast"),
		),
	}
}
