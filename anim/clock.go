package anim

import "time"

// Clock is the monotonic, resettable animation timebase.
// Reset restarts elapsed time from zero; it never pauses.
type Clock struct {
	now   func() time.Time
	start time.Time
}

// NewClock creates a running clock at elapsed zero
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.Reset()
	return c
}

// NewClockWith creates a clock on an injected time source for tests
func NewClockWith(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset zeroes elapsed time
func (c *Clock) Reset() {
	c.start = c.now()
}

// Elapsed returns time since the last reset
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Seconds returns elapsed time as seconds
func (c *Clock) Seconds() float64 {
	return c.Elapsed().Seconds()
}
