package journal

import "time"

// Clock supplies the current time. The session captures "today" exactly once
// from a Clock at start, so tests can pin the calendar instead of depending
// on the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the real wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock is a Clock that always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }
