package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/xmb/internal/nav"
)

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Close      key.Binding
	Theme      key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "category"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←/→", "category"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "item"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑/↓", "item"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy address"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Down, k.Confirm, k.Close, k.Theme, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Up, k.Down},
		{k.Confirm, k.Close, k.Theme},
		{k.ScrollUp, k.Copy, k.Help, k.Quit},
	}
}

// commandBindings maps the keys that become navigation commands.
var commandBindings = []struct {
	binding key.Binding
	kind    nav.Kind
}{
	{keys.Prev, nav.MovePrev},
	{keys.Next, nav.MoveNext},
	{keys.Up, nav.MoveUp},
	{keys.Down, nav.MoveDown},
	{keys.Confirm, nav.Confirm},
	{keys.Close, nav.Close},
	{keys.Theme, nav.ToggleTheme},
}
