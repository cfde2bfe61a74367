package util

import "time"

// Clock abstracts time for components that stamp or wait, so tests can
// drive them deterministically.
type Clock interface {
	After(d time.Duration) <-chan time.Time
	Now() time.Time
	// UnixNano returns the current time as nanoseconds since the epoch,
	// the unit every event timestamp in this module uses.
	UnixNano() uint64
}

type RealClock struct{}

func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) UnixNano() uint64                       { return uint64(time.Now().UnixNano()) }

// StaticClock always reports the same instant. Test helper.
type StaticClock struct {
	Time time.Time
}

func (c StaticClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.Time
	return ch
}
func (c StaticClock) Now() time.Time   { return c.Time }
func (c StaticClock) UnixNano() uint64 { return uint64(c.Time.UnixNano()) }
