package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// KeyMap holds the explorer's own bindings. Widget bindings are appended to
// the help view while a story has focus.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	Copy   key.Binding
	ASCII  key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
	widget components.KeyMap
	story  bool
}

// DefaultKeyMap returns the explorer bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous story"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next story"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "focus story"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy frame"),
		),
		ASCII: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ascii glyphs"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "light/dark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		widget: components.DefaultKeyMap(),
	}
}

// forStory switches the help view between sidebar and story bindings.
func (k KeyMap) forStory(focused bool) KeyMap {
	k.story = focused
	if focused {
		k.Focus.SetHelp("tab", "back to list")
	} else {
		k.Focus.SetHelp("tab", "focus story")
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.story {
		return append(k.widget.ShortHelp(), k.Focus, k.Help)
	}
	return []key.Binding{k.Up, k.Down, k.Focus, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	explorer := []key.Binding{k.Up, k.Down, k.Focus, k.Copy, k.ASCII, k.Theme, k.Help, k.Quit}
	if !k.story {
		return [][]key.Binding{explorer}
	}
	return append([][]key.Binding{explorer}, k.widget.FullHelp()...)
}
