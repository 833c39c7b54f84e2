package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/doggallery/internal/state"
)

// keyMap defines all keyboard bindings for the gallery.
type keyMap struct {
	// Gallery actions
	Reload key.Binding
	Copy   key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding

	// Preferences
	CycleColumns key.Binding
	CycleTheme   key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Load new dogs"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy image URL"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First dog"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last dog"),
		),

		CycleColumns: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle grid columns"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// forPhase returns a copy with bindings enabled only where they act.
// The reload control is only offered once the grid is showing.
func (k keyMap) forPhase(phase state.Phase) keyMap {
	ready := phase == state.PhaseReady
	for _, b := range []*key.Binding{&k.Reload, &k.Copy, &k.Up, &k.Down, &k.Left, &k.Right, &k.First, &k.Last} {
		b.SetEnabled(ready)
	}
	return k
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Copy, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reload, k.Copy},
		{k.Up, k.Down, k.Left, k.Right, k.First, k.Last},
		{k.CycleColumns, k.CycleTheme},
		{k.Help, k.Quit},
	}
}
