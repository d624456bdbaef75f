package anim

import (
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClockWith(func() time.Time { return now })

	if c.Elapsed() != 0 {
		t.Fatalf("fresh clock elapsed %v, want 0", c.Elapsed())
	}

	now = now.Add(1500 * time.Millisecond)
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("elapsed %v, want 1.5s", c.Elapsed())
	}
	if c.Seconds() != 1.5 {
		t.Errorf("seconds %v, want 1.5", c.Seconds())
	}
}

func TestClockReset(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClockWith(func() time.Time { return now })

	now = now.Add(10 * time.Second)
	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("elapsed %v after reset, want 0", c.Elapsed())
	}

	now = now.Add(2 * time.Second)
	if c.Seconds() != 2 {
		t.Errorf("seconds %v after reset, want 2", c.Seconds())
	}
}
