package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/gyre/parameter"
)

// Loop drives the tick callback at a fixed frame rate with drift
// correction. Run blocks on the calling goroutine; ticks never overlap,
// which keeps the whole frame path single-threaded.
type Loop struct {
	interval time.Duration
	tick     func(time.Time) bool

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop at the given frame rate. The callback returns
// false to end the loop.
func NewLoop(fps int, tick func(time.Time) bool) *Loop {
	if fps < parameter.MinFPS {
		fps = parameter.MinFPS
	}
	if fps > parameter.MaxFPS {
		fps = parameter.MaxFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Run executes ticks until the callback returns false or Stop is
// called. Deadlines advance by the fixed interval; when the loop falls
// too far behind it re-anchors instead of bursting catch-up frames.
func (l *Loop) Run() {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	deadline := time.Now().Add(l.interval)

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		now := time.Now()
		if !now.Before(deadline) {
			if !l.tick(now) {
				return
			}

			deadline = deadline.Add(l.interval)
			if now.Sub(deadline) > l.interval*parameter.TickCatchupLimit {
				deadline = now.Add(l.interval)
			}
			now = time.Now()
		}

		sleep := deadline.Sub(now)
		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-l.stopChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				return
			}
		}
	}
}

// Stop halts the loop; safe to call from any goroutine, idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
