// Package nav implements the cross-media-bar navigation state machine.
//
// Every input source (keyboard, pointer, gamepad) is translated into a
// Command elsewhere; Controller.Apply is the single place state changes.
// A command whose precondition fails is ignored without error. Accepted
// commands persist the fields they touched and fire an audio cue.
package nav

import (
	"github.com/atomicstack/xmb/internal/cue"
	"github.com/atomicstack/xmb/internal/logging/events"
	"github.com/atomicstack/xmb/internal/menu"
)

// Controller owns cursor, overlay and theme state for one catalog.
type Controller struct {
	catalog menu.Catalog
	state   State
	prefs   *prefs
	cue     cue.Emitter
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore injects the durable store. Without one nothing is persisted.
func WithStore(s Store) Option {
	return func(c *Controller) { c.prefs = newPrefs(s) }
}

// WithCue injects the audio cue emitter.
func WithCue(e cue.Emitter) Option {
	return func(c *Controller) {
		if e != nil {
			c.cue = e
		}
	}
}

// New builds a controller and restores persisted state, clamped to catalog.
func New(catalog menu.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		state:   DefaultState(),
		prefs:   newPrefs(nil),
		cue:     cue.Silent{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = c.prefs.restore(catalog)
	events.Nav.Restore(c.state.Cursor.Column, c.state.Cursor.Row, string(c.state.Overlay.Panel), string(c.state.Theme))
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() menu.Catalog {
	return c.catalog
}

// CurrentCategory returns the category under the cursor.
func (c *Controller) CurrentCategory() menu.Category {
	return c.catalog.Categories[c.state.Cursor.Column]
}

// CurrentItem returns the item under the cursor.
func (c *Controller) CurrentItem() (menu.Item, bool) {
	return c.catalog.Item(c.state.Cursor.Column, c.state.Cursor.Row)
}

// Apply runs cmd and reports whether it changed state. Side effects only
// happen for accepted commands.
func (c *Controller) Apply(cmd Command) bool {
	before := c.state
	next, class, ok := c.transition(cmd)
	if !ok || next == before {
		return false
	}
	c.state = next
	c.prefs.save(before, next)
	c.trace(before, next)
	c.cue.Emit(class)
	return true
}

func (c *Controller) transition(cmd Command) (State, cue.Class, bool) {
	s := c.state
	if cmd.Kind == ToggleTheme {
		s.Theme = s.Theme.Toggle()
		return s, cue.Navigate, true
	}
	if s.Overlay.Open() {
		if cmd.Kind != Close {
			return s, 0, false
		}
		s.Overlay = Overlay{}
		return s, cue.Cancel, true
	}
	n := c.catalog.Len()
	switch cmd.Kind {
	case MoveNext:
		s.Cursor = Cursor{Column: wrapColumn(s.Cursor.Column+1, n)}
	case MovePrev:
		s.Cursor = Cursor{Column: wrapColumn(s.Cursor.Column-1, n)}
	case JumpColumn:
		if cmd.Index < 0 || cmd.Index >= n {
			return s, 0, false
		}
		if cmd.Index == s.Cursor.Column {
			// Re-selecting the active column still resets the row.
			s.Cursor.Row = 0
			break
		}
		s.Cursor = Cursor{Column: cmd.Index}
	case MoveDown:
		if !moveRowBy(&s.Cursor.Row, 1, c.catalog.ItemCount(s.Cursor.Column)) {
			return s, 0, false
		}
	case MoveUp:
		if !moveRowBy(&s.Cursor.Row, -1, c.catalog.ItemCount(s.Cursor.Column)) {
			return s, 0, false
		}
	case SelectRow:
		if cmd.Index < 0 || cmd.Index >= c.catalog.ItemCount(s.Cursor.Column) {
			return s, 0, false
		}
		s.Cursor.Row = cmd.Index
	case Confirm:
		panel, ok := c.catalog.Resolve(s.Cursor.Column, s.Cursor.Row)
		if !ok {
			return s, 0, false
		}
		s.Overlay = Overlay{Panel: panel}
		return s, cue.Confirm, true
	default:
		// Close with no overlay open, or an unknown kind.
		return s, 0, false
	}
	return s, cue.Navigate, true
}

func (c *Controller) trace(before, after State) {
	if before.Cursor != after.Cursor {
		events.Nav.Cursor(after.Cursor.Column, after.Cursor.Row)
	}
	if before.Overlay != after.Overlay {
		events.Nav.Overlay(string(after.Overlay.Panel))
	}
	if before.Theme != after.Theme {
		events.Nav.Theme(string(after.Theme))
	}
}
