package input

import "github.com/atomicstack/xmb/internal/nav"

// Deadzone is the analog magnitude above which a stick counts as a press.
const Deadzone = 0.4

// Button is a digital button sample.
type Button struct {
	Pressed bool
}

// Pad is one connected device's state at poll time. Axes are in [-1, 1]
// with negative meaning left/up.
type Pad struct {
	Axes    []float64
	Buttons []Button
}

// Source returns the currently connected pads. No devices means an empty slice.
type Source interface {
	Poll() []Pad
}

// NoSource never reports a device.
type NoSource struct{}

func (NoSource) Poll() []Pad { return nil }

// Mapping says which buttons and axes drive each control. Button indices
// below zero are unmapped.
type Mapping struct {
	Name    string
	Left    int
	Right   int
	Up      int
	Down    int
	Confirm int
	Cancel  int
	AxisX   []int
	AxisY   []int
}

// StandardMapping follows the W3C "standard" gamepad layout.
var StandardMapping = Mapping{
	Name:    "standard",
	Left:    14,
	Right:   15,
	Up:      12,
	Down:    13,
	Confirm: 0,
	Cancel:  1,
	AxisX:   []int{0},
	AxisY:   []int{1},
}

// LinuxMapping matches joydev: the d-pad reports as hat axes 6 and 7.
var LinuxMapping = Mapping{
	Name:    "linux",
	Left:    -1,
	Right:   -1,
	Up:      -1,
	Down:    -1,
	Confirm: 0,
	Cancel:  1,
	AxisX:   []int{0, 6},
	AxisY:   []int{1, 7},
}

// MappingByName resolves a mapping name, reporting false when unknown.
func MappingByName(name string) (Mapping, bool) {
	switch name {
	case "", StandardMapping.Name:
		return StandardMapping, true
	case LinuxMapping.Name:
		return LinuxMapping, true
	}
	return Mapping{}, false
}

// Read reduces pads to a level sample. A directional control is active when
// its button is pressed or one of its axes is past the deadzone in its
// direction; controls are OR-ed across pads.
func (m Mapping) Read(pads []Pad) Sample {
	s := make(Sample, len(Controls))
	for _, p := range pads {
		s[Left] = s[Left] || p.pressed(m.Left) || p.deflected(m.AxisX, -1)
		s[Right] = s[Right] || p.pressed(m.Right) || p.deflected(m.AxisX, 1)
		s[Up] = s[Up] || p.pressed(m.Up) || p.deflected(m.AxisY, -1)
		s[Down] = s[Down] || p.pressed(m.Down) || p.deflected(m.AxisY, 1)
		s[Accept] = s[Accept] || p.pressed(m.Confirm)
		s[Back] = s[Back] || p.pressed(m.Cancel)
	}
	return s
}

func (p Pad) pressed(idx int) bool {
	return idx >= 0 && idx < len(p.Buttons) && p.Buttons[idx].Pressed
}

func (p Pad) deflected(axes []int, sign float64) bool {
	for _, idx := range axes {
		if idx < 0 || idx >= len(p.Axes) {
			continue
		}
		if p.Axes[idx]*sign > Deadzone {
			return true
		}
	}
	return false
}

// Gamepad is the polled adapter: each Poll samples the source once and
// returns one command per control that was pressed since the last Poll.
type Gamepad struct {
	source  Source
	mapping Mapping
	edges   *EdgeDetector
}

// NewGamepad builds an adapter over source. A nil source behaves like NoSource.
func NewGamepad(source Source, mapping Mapping) *Gamepad {
	if source == nil {
		source = NoSource{}
	}
	return &Gamepad{source: source, mapping: mapping, edges: NewEdgeDetector()}
}

// Poll samples the source and returns commands for rising edges.
func (g *Gamepad) Poll() []nav.Command {
	rising := g.edges.Update(g.mapping.Read(g.source.Poll()))
	if len(rising) == 0 {
		return nil
	}
	cmds := make([]nav.Command, 0, len(rising))
	for _, c := range rising {
		if cmd, ok := CommandFor(c); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
