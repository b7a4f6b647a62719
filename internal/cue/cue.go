// Package cue plays short advisory sounds for navigation feedback. Cues are
// fire-and-forget: a failing or missing audio device never affects the caller.
package cue

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/atomicstack/xmb/internal/logging/events"
)

// Class groups commands that share a cue.
type Class int

const (
	Navigate Class = iota
	Confirm
	Cancel
)

func (c Class) String() string {
	switch c {
	case Navigate:
		return "navigate"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Tone describes a single beep.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Gain      float64
}

var tones = map[Class]Tone{
	Navigate: {Frequency: 660, Duration: 40 * time.Millisecond, Gain: 0.04},
	Confirm:  {Frequency: 880, Duration: 110 * time.Millisecond, Gain: 0.06},
	Cancel:   {Frequency: 330, Duration: 80 * time.Millisecond, Gain: 0.05},
}

// ToneFor returns the tone played for class.
func ToneFor(c Class) Tone {
	return tones[c]
}

// Device is the sound capability a Player drives.
type Device interface {
	PlayTone(frequency float64, duration time.Duration, gain float64) error
}

// Emitter is what the navigation controller calls on each accepted command.
type Emitter interface {
	Emit(Class)
}

// Silent discards every tone.
type Silent struct{}

func (Silent) PlayTone(float64, time.Duration, float64) error { return nil }

// Emit satisfies Emitter so Silent can stand in for a Player.
func (Silent) Emit(Class) {}

// Bell rings the terminal bell; pitch and gain are not representable.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

var errNoWriter = errors.New("cue: bell has no writer")

func (b *Bell) PlayTone(_ float64, _ time.Duration, gain float64) error {
	if b == nil || b.w == nil {
		return errNoWriter
	}
	if gain <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

const defaultMinInterval = 30 * time.Millisecond

// Player maps cue classes to tones and plays them on a Device.
type Player struct {
	device   Device
	throttle *throttle
	wg       sync.WaitGroup
}

// Option configures a Player.
type Option func(*playerOptions)

type playerOptions struct {
	interval time.Duration
	now      func() time.Time
}

// WithMinInterval sets the minimum gap between cues; bursts inside it are dropped.
func WithMinInterval(d time.Duration) Option {
	return func(o *playerOptions) { o.interval = d }
}

// WithClock overrides the time source used for throttling.
func WithClock(now func() time.Time) Option {
	return func(o *playerOptions) { o.now = now }
}

// NewPlayer creates a Player. A nil device plays nothing.
func NewPlayer(device Device, opts ...Option) *Player {
	o := playerOptions{interval: defaultMinInterval}
	for _, opt := range opts {
		opt(&o)
	}
	if device == nil {
		device = Silent{}
	}
	return &Player{device: device, throttle: newThrottle(o.interval, o.now)}
}

// Emit plays the tone for class without blocking the caller.
func (p *Player) Emit(c Class) {
	if p == nil {
		return
	}
	if !p.throttle.allow() {
		events.Cue.Throttled(c.String())
		return
	}
	tone := ToneFor(c)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				events.Cue.Error(c.String(), errors.New("cue: device panicked"))
			}
		}()
		if err := p.device.PlayTone(tone.Frequency, tone.Duration, tone.Gain); err != nil {
			events.Cue.Error(c.String(), err)
		}
	}()
}

// Wait blocks until in-flight cues finish.
func (p *Player) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}
