// Package input turns raw device signals into navigation commands. Adapters
// never touch controller state; they only produce nav.Command values.
package input

import "github.com/atomicstack/xmb/internal/nav"

// Control is a logical button shared by every device.
type Control string

const (
	Left   Control = "left"
	Right  Control = "right"
	Up     Control = "up"
	Down   Control = "down"
	Accept Control = "confirm"
	Back   Control = "cancel"
)

// Controls lists every control in the order edges are reported.
var Controls = []Control{Left, Right, Up, Down, Accept, Back}

var commands = map[Control]nav.Command{
	Left:   nav.Cmd(nav.MovePrev),
	Right:  nav.Cmd(nav.MoveNext),
	Up:     nav.Cmd(nav.MoveUp),
	Down:   nav.Cmd(nav.MoveDown),
	Accept: nav.Cmd(nav.Confirm),
	Back:   nav.Cmd(nav.Close),
}

// CommandFor maps a control to the command it issues.
func CommandFor(c Control) (nav.Command, bool) {
	cmd, ok := commands[c]
	return cmd, ok
}
