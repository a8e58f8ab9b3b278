package bench

import "time"

// Clock supplies the current time for measuring a run.
//
// Readings are only ever subtracted from each other, so implementations must
// be monotonic. WallClock satisfies this because time.Now carries a monotonic
// reading that time.Time.Sub prefers.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time {
	return time.Now()
}
