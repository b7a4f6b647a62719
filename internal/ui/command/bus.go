package command

import (
	"github.com/atomicstack/xmb/internal/logging/events"
	"github.com/atomicstack/xmb/internal/nav"
)

// Input sources recorded in traces.
const (
	SourceKeyboard = "keyboard"
	SourcePointer  = "pointer"
	SourceGamepad  = "gamepad"
	SourceStartup  = "startup"
)

// Target applies navigation commands. *nav.Controller satisfies it.
type Target interface {
	Apply(nav.Command) bool
}

// Bus funnels commands from every input adapter into one target.
type Bus struct {
	target Target
}

// New initialises a command bus over target.
func New(target Target) *Bus {
	return &Bus{target: target}
}

// Dispatch applies cmd and reports whether it changed state. Ignored
// commands are traced but otherwise have no effect.
func (b *Bus) Dispatch(source string, cmd nav.Command) bool {
	if b == nil || b.target == nil {
		return false
	}
	if !b.target.Apply(cmd) {
		events.Command.Ignored(source, cmd.String())
		return false
	}
	events.Command.Dispatch(source, cmd.String())
	return true
}
