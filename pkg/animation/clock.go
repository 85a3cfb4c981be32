package animation

import (
	"sync"
	"time"
)

// Clock is the time source tickers measure elapsed time against.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = systemClock{}
)

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it. Nil restores the system clock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = systemClock{}
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}

// ManualClock only moves when advanced. Offline renderers use it to capture
// the sweep at an exact point of its loop, and tests use it to step
// animations deterministically.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
