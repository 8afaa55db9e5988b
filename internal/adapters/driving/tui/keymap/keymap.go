// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding

	// Submit runs the query line.
	Submit key.Binding

	// Edit returns focus to the query line from the list.
	Edit key.Binding

	// Back leaves the query line without submitting.
	Back key.Binding

	Up   key.Binding
	Down key.Binding

	// Delete removes the selected record.
	Delete key.Binding

	// Refresh re-runs the last query.
	Refresh key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Edit: key.NewBinding(
			key.WithKeys("/", "tab"),
			key.WithHelp("/", "edit query"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "results"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// InputHelp returns the bindings shown while the query line has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back}
}

// ListHelp returns the bindings shown while the result list has focus.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Refresh, k.Quit}
}

// Matches reports whether msg triggers binding.
func Matches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
