package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/stackline/internal/dependencies/clock"
)

// MockClock is a manually driven Clock. With a step set, every reading moves
// the clock forward, so successive records get distinct timestamps.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mocked current time, then applies the step
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// SetStep makes each call to Now advance the clock by d
func (c *MockClock) SetStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
}
