package cue

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDevice struct {
	mu    sync.Mutex
	tones []Tone
	err   error
}

func (d *recordingDevice) PlayTone(f float64, dur time.Duration, gain float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tones = append(d.tones, Tone{Frequency: f, Duration: dur, Gain: gain})
	return d.err
}

func (d *recordingDevice) played() []Tone {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Tone(nil), d.tones...)
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestPlayerPlaysToneForClass(t *testing.T) {
	dev := &recordingDevice{}
	p := NewPlayer(dev, WithMinInterval(0))
	p.Emit(Confirm)
	p.Wait()
	require.Len(t, dev.played(), 1)
	assert.Equal(t, ToneFor(Confirm), dev.played()[0])
}

func TestClassesHaveDistinctTones(t *testing.T) {
	nav, confirm, cancel := ToneFor(Navigate), ToneFor(Confirm), ToneFor(Cancel)
	assert.NotEqual(t, nav.Frequency, confirm.Frequency)
	assert.NotEqual(t, confirm.Frequency, cancel.Frequency)
	assert.NotEqual(t, nav.Duration, cancel.Duration)
}

func TestPlayerSwallowsDeviceErrors(t *testing.T) {
	dev := &recordingDevice{err: errors.New("no audio")}
	p := NewPlayer(dev, WithMinInterval(0))
	assert.NotPanics(t, func() {
		p.Emit(Navigate)
		p.Emit(Cancel)
		p.Wait()
	})
	assert.Len(t, dev.played(), 2)
}

type panickyDevice struct{}

func (panickyDevice) PlayTone(float64, time.Duration, float64) error { panic("driver bug") }

func TestPlayerRecoversFromDevicePanic(t *testing.T) {
	p := NewPlayer(panickyDevice{}, WithMinInterval(0))
	assert.NotPanics(t, func() {
		p.Emit(Navigate)
		p.Wait()
	})
}

func TestPlayerThrottlesBursts(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	dev := &recordingDevice{}
	p := NewPlayer(dev, WithMinInterval(50*time.Millisecond), WithClock(clock.Now))

	p.Emit(Navigate)
	p.Emit(Navigate)
	clock.now = clock.now.Add(20 * time.Millisecond)
	p.Emit(Navigate)
	clock.now = clock.now.Add(40 * time.Millisecond)
	p.Emit(Confirm)
	p.Wait()

	played := dev.played()
	require.Len(t, played, 2)
}

func TestNilPlayerAndDevice(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() { p.Emit(Confirm); p.Wait() })

	q := NewPlayer(nil)
	assert.NotPanics(t, func() { q.Emit(Confirm); q.Wait() })
}

func TestBellWritesBellCharacter(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	require.NoError(t, b.PlayTone(440, time.Millisecond, 0.1))
	assert.Equal(t, "\a", buf.String())

	require.NoError(t, b.PlayTone(440, time.Millisecond, 0))
	assert.Equal(t, "\a", buf.String(), "zero gain is silent")

	assert.Error(t, NewBell(nil).PlayTone(440, time.Millisecond, 0.1))
}
