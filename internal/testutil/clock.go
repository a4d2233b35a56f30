package testutil

import "time"

// Clock provides deterministic, monotonically increasing times so scores
// drift between operations the way they do in a long session.
type Clock struct {
	current time.Time
	step    time.Duration
}

// NewClock returns a clock at the start of the test interval.
func NewClock() *Clock {
	return &Clock{
		current: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		step:    7 * time.Hour,
	}
}

// Now returns the current time and advances the clock by one step.
func (c *Clock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)

	return now
}
