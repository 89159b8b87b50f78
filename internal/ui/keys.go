package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the queue browser.
type keyMap struct {
	// Global
	Quit key.Binding

	// Queue actions
	Reload  key.Binding
	Delete  key.Binding
	Approve key.Binding
	Ban     key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Confirmation prompt
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Exit"),
		),

		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Approve"),
		),
		Ban: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Ban"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),

		// Only an upper-case Y confirms; everything else declines.
		Confirm: key.NewBinding(
			key.WithKeys("Y"),
		),
	}
}

// legend renders the footer key legend.
func (k keyMap) legend() string {
	h := func(b key.Binding) string {
		return "'" + b.Help().Key + "': " + b.Help().Desc
	}
	return h(k.Quit) + " | " + h(k.Approve) + " | " + h(k.Delete) + ", " + h(k.Ban) + " | " + h(k.Reload)
}
