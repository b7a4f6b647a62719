// Package frame provides the cancelable per-frame clock that drives polled
// input. Start returns a handle; Stop guarantees no tick is delivered after
// it returns.
package frame

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/xmb/internal/logging/events"
)

// DefaultFPS is the nominal display refresh cadence.
const DefaultFPS = 60

// Tick is one frame. Elapsed is measured from Start and never decreases.
type Tick struct {
	Seq     uint64
	Elapsed time.Duration
}

// Clock emits ticks at a fixed interval until stopped.
type Clock struct {
	interval time.Duration
	started  time.Time

	ctx    context.Context
	cancel context.CancelFunc

	ticks chan Tick
	wg    sync.WaitGroup

	stopOnce sync.Once
	mu       sync.Mutex
	seq      uint64
}

// Interval converts a frame rate into a tick interval.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Start begins ticking every interval.
func Start(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = Interval(DefaultFPS)
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Clock{
		interval: interval,
		started:  time.Now(),
		ctx:      ctx,
		cancel:   cancel,
		ticks:    make(chan Tick, 1),
	}
	c.wg.Add(1)
	go c.run()
	return c
}

// Ticks returns the tick channel. It is closed by Stop.
func (c *Clock) Ticks() <-chan Tick {
	return c.ticks
}

// Stop cancels the clock and waits for the ticker goroutine. Pending ticks
// are discarded and the channel is closed. Safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		c.cancel()
		c.wg.Wait()
	drain:
		for {
			select {
			case <-c.ticks:
			default:
				break drain
			}
		}
		close(c.ticks)
		c.mu.Lock()
		seq := c.seq
		c.mu.Unlock()
		events.Frame.Stopped(seq)
	})
}

func (c *Clock) run() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-ticker.C:
			c.mu.Lock()
			c.seq++
			tick := Tick{Seq: c.seq, Elapsed: now.Sub(c.started)}
			c.mu.Unlock()
			if c.ctx.Err() != nil {
				return
			}
			// A consumer that has not taken the previous tick just misses this one.
			select {
			case c.ticks <- tick:
			default:
			}
		}
	}
}
