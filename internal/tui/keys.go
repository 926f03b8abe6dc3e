package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for both views. The dispatcher only consults
// the bindings that belong to the focused view.
type KeyMap struct {
	// list view
	Quit   key.Binding
	Down   key.Binding
	Up     key.Binding
	Toggle key.Binding
	Delete key.Binding
	Add    key.Binding

	// add view
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		Delete: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
		Add:    key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
	}
}

// ListHelp returns the list view bindings for the help line.
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Add, k.Quit}
}

// AddHelp returns the add view bindings for the help line.
func (k KeyMap) AddHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
