package nav

import "github.com/atomicstack/xmb/internal/menu"

// Cursor is the selected category (Column) and item within it (Row).
type Cursor struct {
	Column int
	Row    int
}

// Overlay is either closed (zero value) or showing Panel.
type Overlay struct {
	Panel menu.Panel
}

// Open reports whether a panel is showing.
func (o Overlay) Open() bool {
	return o.Panel != ""
}

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeDefault   Theme = "default"
	ThemeAlternate Theme = "alternate"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDefault || t == ThemeAlternate
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeAlternate {
		return ThemeDefault
	}
	return ThemeAlternate
}

// State is everything the controller owns.
type State struct {
	Cursor  Cursor
	Overlay Overlay
	Theme   Theme
}

// DefaultState is used for fields that are absent from storage.
func DefaultState() State {
	return State{Theme: ThemeDefault}
}
