package dateutil

import (
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // tz database embedded so zones resolve on hosts without zoneinfo

	"cloud.google.com/go/civil"
	"github.com/sucrim/servicekit/pkg/apperrors"
)

// DefaultZone is the civil zone used by the package-level helpers
const DefaultZone = "America/Mexico_City"

// LoadZone resolves an IANA zone name.
// An empty name is rejected rather than silently mapped to UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", apperrors.ErrInvalidArgument)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown zone %q: %v", apperrors.ErrInvalidArgument, name, err)
	}
	return loc, nil
}

// Localize attaches loc to a naive civil date-time.
//
// Wall-clock times skipped by a forward DST transition return
// ErrNonexistentTime. Times repeated by a backward transition resolve to the
// earlier instant (the first occurrence).
func Localize(dt civil.DateTime, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, fmt.Errorf("%w: nil location", apperrors.ErrInvalidArgument)
	}

	guess := dt.In(loc)
	wall := dt.In(time.UTC)

	// Offsets in effect a day either side cover any transition touching dt.
	offsets := make(map[int]struct{}, 3)
	for _, probe := range []time.Time{guess.Add(-24 * time.Hour), guess, guess.Add(24 * time.Hour)} {
		_, off := probe.Zone()
		offsets[off] = struct{}{}
	}

	var candidates []time.Time
	for off := range offsets {
		c := wall.Add(-time.Duration(off) * time.Second).In(loc)
		if _, got := c.Zone(); got == off && civil.DateTimeOf(c) == dt {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return time.Time{}, fmt.Errorf("%w: %s does not occur in %s", apperrors.ErrNonexistentTime, dt, loc)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})
	return candidates[0], nil
}

// IsAmbiguous reports whether dt occurs twice in loc
func IsAmbiguous(dt civil.DateTime, loc *time.Location) bool {
	first, err := Localize(dt, loc)
	if err != nil {
		return false
	}
	_, off := first.Zone()
	for _, d := range []time.Duration{30 * time.Minute, time.Hour, 2 * time.Hour} {
		later := first.Add(d)
		if _, o := later.Zone(); o != off && civil.DateTimeOf(later) == dt {
			return true
		}
	}
	return false
}

var commonZones = []string{
	"UTC",
	"America/Mexico_City",
	"America/Monterrey",
	"America/Cancun",
	"America/Tijuana",
	"America/Hermosillo",
	"America/Mazatlan",
	"America/Chihuahua",
	"America/Bogota",
	"America/Lima",
	"America/Santiago",
	"America/Argentina/Buenos_Aires",
	"America/Sao_Paulo",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Toronto",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Berlin",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// CommonZones returns a copy of the zone names offered to API clients
func CommonZones() []string {
	out := make([]string, len(commonZones))
	copy(out, commonZones)
	return out
}
