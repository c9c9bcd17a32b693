package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The card builder uses it to stamp the creation timestamp, which is the
// single impure input of the rendering step.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
