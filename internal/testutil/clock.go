package testutil

import (
	"sync"
	"time"
)

// Clock is a deterministic time source. Each call to Now returns the
// current instant and then moves it forward by the configured step, so a
// zero step freezes time.
type Clock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewClock returns a Clock starting at start.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{current: start, step: step}
}

// Now returns the clock's instant and advances it by one step. Its method
// value fits question.NewIDGenerator.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
