package application

import (
	"testing"
	"time"
)

type tickClock struct {
	t    time.Time
	tick time.Duration
}

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(c.tick)
	return c.t
}

func TestStopwatch(t *testing.T) {
	c := &tickClock{t: time.Unix(100, 0), tick: time.Second}
	elapsed := Stopwatch(c)

	if got := elapsed(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
	if got := elapsed(); got != 2*time.Second {
		t.Errorf("expected 2s, got %v", got)
	}
}

func TestStopwatch_NilClock(t *testing.T) {
	if got := Stopwatch(nil)(); got < 0 {
		t.Errorf("expected non-negative duration, got %v", got)
	}
}
