package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/gyre/parameter"
)

func TestLoopClampsFPS(t *testing.T) {
	l := NewLoop(0, func(time.Time) bool { return false })
	if l.interval != time.Second/time.Duration(parameter.MinFPS) {
		t.Errorf("interval %v for fps 0", l.interval)
	}
	l = NewLoop(100000, func(time.Time) bool { return false })
	if l.interval != time.Second/time.Duration(parameter.MaxFPS) {
		t.Errorf("interval %v for oversized fps", l.interval)
	}
}

func TestLoopEndsWhenTickReturnsFalse(t *testing.T) {
	var ticks atomic.Int64
	l := NewLoop(parameter.MaxFPS, func(time.Time) bool {
		return ticks.Add(1) < 3
	})

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not end after tick returned false")
	}
	if got := ticks.Load(); got != 3 {
		t.Errorf("ran %d ticks, want 3", got)
	}
}

func TestLoopStop(t *testing.T) {
	var ticks atomic.Int64
	l := NewLoop(parameter.MinFPS, func(time.Time) bool {
		ticks.Add(1)
		return true
	})

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	l.Stop()
	l.Stop() // idempotent

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopTickSpacing(t *testing.T) {
	if testing.Short() {
		t.Skip("timing sensitive")
	}

	var stamps []time.Time
	l := NewLoop(50, func(now time.Time) bool {
		stamps = append(stamps, now)
		return len(stamps) < 5
	})
	l.Run()

	if len(stamps) != 5 {
		t.Fatalf("ran %d ticks, want 5", len(stamps))
	}
	total := stamps[len(stamps)-1].Sub(stamps[0])
	// 4 intervals at 20ms nominal; generous bounds for CI jitter
	if total < 50*time.Millisecond || total > 500*time.Millisecond {
		t.Errorf("5 ticks spanned %v at 50fps", total)
	}
}
