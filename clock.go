package rasteredit

import "time"

// Clock supplies the timestamp recorded on each history Moment. The
// original engine hardcoded this to a placeholder value; injecting it here
// makes Moment timestamps both real and deterministic in tests.
type Clock interface {
	Now() time.Time
}

// realClock is the default Clock, backed by the system wall clock.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FixedClock is a Clock that always returns the same instant, for tests
// that need reproducible Moment timestamps.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time { return f.At }
