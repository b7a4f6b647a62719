// Package gamepad reads Linux joystick devices (/dev/input/js*) and exposes
// their latest state as an input.Source snapshot.
package gamepad

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/atomicstack/xmb/internal/input"
	"github.com/atomicstack/xmb/internal/logging/events"
)

// DefaultPath is the first joystick device on most Linux systems.
const DefaultPath = "/dev/input/js0"

const (
	eventSize  = 8
	typeButton = 0x01
	typeAxis   = 0x02
	typeInit   = 0x80
	axisMax    = 32767.0
	maxIndex   = 64
)

// event mirrors struct js_event from linux/joystick.h.
type event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Device keeps the latest snapshot of one joystick. The zero value is not
// usable; call Open.
type Device struct {
	path string

	mu        sync.Mutex
	connected bool
	axes      []float64
	buttons   []input.Button
}

// Open prepares a device reader for path. Nothing is opened until Run.
func Open(path string) *Device {
	if path == "" {
		path = DefaultPath
	}
	return &Device{path: path}
}

// Path returns the device path.
func (d *Device) Path() string {
	return d.path
}

// Poll returns the current snapshot, or nothing when no device is connected.
func (d *Device) Poll() []input.Pad {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.connected {
		return nil
	}
	p := input.Pad{
		Axes:    append([]float64(nil), d.axes...),
		Buttons: append([]input.Button(nil), d.buttons...),
	}
	return []input.Pad{p}
}

// Run reads events until ctx is cancelled or the device goes away. A missing
// or unreadable device is not an error: Poll simply keeps returning nothing.
func (d *Device) Run(ctx context.Context) error {
	f, err := os.Open(d.path)
	if err != nil {
		events.Gamepad.Missing(d.path, err)
		return nil
	}
	events.Gamepad.Connected(d.path)
	d.setConnected(true)
	defer d.setConnected(false)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = f.Close()
	}()

	err = d.consume(f)
	if ctx.Err() != nil {
		return nil
	}
	events.Gamepad.Disconnected(d.path, err)
	return nil
}

func (d *Device) consume(r io.Reader) error {
	buf := make([]byte, eventSize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, fs.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read %s: %w", d.path, err)
		}
		d.apply(decode(buf))
	}
}

func decode(buf []byte) event {
	return event{
		Time:   binary.LittleEndian.Uint32(buf[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}
}

func (d *Device) apply(e event) {
	idx := int(e.Number)
	if idx >= maxIndex {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	switch e.Type &^ typeInit {
	case typeButton:
		for len(d.buttons) <= idx {
			d.buttons = append(d.buttons, input.Button{})
		}
		d.buttons[idx].Pressed = e.Value != 0
	case typeAxis:
		for len(d.axes) <= idx {
			d.axes = append(d.axes, 0)
		}
		v := float64(e.Value) / axisMax
		if v < -1 {
			v = -1
		}
		d.axes[idx] = v
	}
}

func (d *Device) setConnected(on bool) {
	d.mu.Lock()
	d.connected = on
	if !on {
		d.axes = nil
		d.buttons = nil
	}
	d.mu.Unlock()
}
