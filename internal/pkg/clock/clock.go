package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a test clock pinned to an instant; the operating-window
// classification depends on the wall clock, so tests drive it explicitly.
type FixedClock struct {
	currentTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{currentTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.currentTime
}

func (c *FixedClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
