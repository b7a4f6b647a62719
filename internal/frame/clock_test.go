package frame

import (
	"testing"
	"time"
)

func TestClockDeliversIncreasingTicks(t *testing.T) {
	c := Start(time.Millisecond)
	defer c.Stop()

	var last Tick
	for i := 0; i < 3; i++ {
		select {
		case tick, ok := <-c.Ticks():
			if !ok {
				t.Fatalf("tick channel closed early")
			}
			if tick.Seq <= last.Seq {
				t.Fatalf("expected increasing seq, got %d after %d", tick.Seq, last.Seq)
			}
			if tick.Elapsed < last.Elapsed {
				t.Fatalf("elapsed went backwards: %v after %v", tick.Elapsed, last.Elapsed)
			}
			last = tick
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for tick %d", i)
		}
	}
}

func TestStopClosesChannelWithoutFurtherTicks(t *testing.T) {
	c := Start(time.Millisecond)
	select {
	case <-c.Ticks():
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for first tick")
	}
	time.Sleep(5 * time.Millisecond)
	c.Stop()

	if _, ok := <-c.Ticks(); ok {
		t.Fatalf("expected no ticks after Stop")
	}
	c.Stop()
}

func TestInterval(t *testing.T) {
	if got := Interval(50); got != 20*time.Millisecond {
		t.Fatalf("expected 20ms, got %v", got)
	}
	if got := Interval(0); got != time.Second/DefaultFPS {
		t.Fatalf("expected default interval, got %v", got)
	}
}
