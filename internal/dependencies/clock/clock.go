package clock

import "time"

// Clock stamps game records and events. Tests substitute mocks.MockClock.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock in UTC so stored timestamps compare equal
// after a JSON round trip
type UTCClock struct{}

// New creates a new UTCClock
func New() UTCClock {
	return UTCClock{}
}

// Now returns the current time in UTC
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
