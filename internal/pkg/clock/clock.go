package clock

import "time"

// Clock abstracts the current time. The pricing flow takes exactly one
// Now() snapshot per calculation, which keeps advance-booking-days
// derivation deterministic and testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	now time.Time
}

// NewFake creates a FakeClock pinned to t (expected in UTC).
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the pinned time.
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Set pins the clock to t.
func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
