package dateutil

import "time"

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
