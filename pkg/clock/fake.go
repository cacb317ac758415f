package clock

import "time"

// Fake is a Clock a test advances explicitly, so runtime-bounded
// termination can be exercised without a real wall-clock delay.
type Fake struct {
	now time.Time
}

// NewFake creates a Fake clock starting at t.
func NewFake(t time.Time) *Fake { return &Fake{now: t} }

// Now returns the fake's current time.
func (f *Fake) Now() time.Time { return f.now }

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) { f.now = f.now.Add(d) }
