package dateutil

import (
	"time"

	"cloud.google.com/go/civil"
)

var std = MustNew()

// Default returns the Converter behind the package-level helpers:
// DefaultZone, the system clock and no logging.
func Default() *Converter {
	return std
}

// Now returns the current time in DefaultZone
func Now() time.Time {
	return std.Now()
}

// Today returns the current date in DefaultZone
func Today() civil.Date {
	return std.Today()
}

// ToFixedZone expresses t in DefaultZone
func ToFixedZone(t time.Time) time.Time {
	return std.ToFixedZone(t)
}

// ToFixedZoneCivil reads dt as UTC and expresses it in DefaultZone
func ToFixedZoneCivil(dt civil.DateTime) time.Time {
	return std.ToFixedZoneCivil(dt)
}

// FromFixedZone expresses a DefaultZone value in target (UTC when nil)
func FromFixedZone(t time.Time, target *time.Location) (time.Time, error) {
	return std.FromFixedZone(t, target)
}

// FromFixedZoneCivil reads dt as DefaultZone civil time and expresses it in target
func FromFixedZoneCivil(dt civil.DateTime, target *time.Location) (time.Time, error) {
	return std.FromFixedZoneCivil(dt, target)
}

// FromFixedZoneTo expresses a DefaultZone value in the named zone
func FromFixedZoneTo(t time.Time, targetZone string) (time.Time, error) {
	return std.FromFixedZoneTo(t, targetZone)
}
