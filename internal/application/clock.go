package application

import "time"

// Clock interface so elapsed times can be faked in tests
type Clock interface {
	Now() time.Time
}

// SystemClock is the default, backed by time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stopwatch starts timing on c (SystemClock when nil) and returns a func
// reporting the time elapsed since the call.
func Stopwatch(c Clock) func() time.Duration {
	if c == nil {
		c = SystemClock{}
	}
	start := c.Now()
	return func() time.Duration { return c.Now().Sub(start) }
}
