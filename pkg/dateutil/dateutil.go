// Package dateutil produces current-time values in a fixed civil zone and
// converts instants between that zone and others.
//
// Zoned values are time.Time. Naive values (no zone attached) are
// civil.DateTime, and each conversion documents how it reads them:
//
//   - ToFixedZoneCivil reads a naive value as UTC.
//   - FromFixedZoneCivil reads a naive value as civil time in the fixed zone.
//
// All conversions preserve the instant; only the civil representation changes.
package dateutil

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/logging"
)

// Converter anchors "now" and zone conversions to one fixed zone.
// It is immutable after New and safe for concurrent use.
type Converter struct {
	loc    *time.Location
	clock  Clock
	logger logrus.FieldLogger
}

type options struct {
	zone   string
	loc    *time.Location
	clock  Clock
	logger logrus.FieldLogger
}

// Option configures a Converter
type Option func(*options)

// WithZone sets the fixed zone by IANA name
func WithZone(name string) Option {
	return func(o *options) {
		o.zone = name
		o.loc = nil
	}
}

// WithLocation sets the fixed zone from an already loaded location
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithClock sets the source of the current instant
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a Converter. Without options it uses DefaultZone, the system
// clock and a discarding logger.
func New(opts ...Option) (*Converter, error) {
	o := options{zone: DefaultZone}
	for _, opt := range opts {
		opt(&o)
	}

	loc := o.loc
	if loc == nil {
		var err error
		if loc, err = LoadZone(o.zone); err != nil {
			return nil, err
		}
	}
	if o.clock == nil {
		o.clock = SystemClock()
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	return &Converter{
		loc:    loc,
		clock:  o.clock,
		logger: o.logger.WithField("zone", loc.String()),
	}, nil
}

// MustNew is like New but panics on error
func MustNew(opts ...Option) *Converter {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Location returns the fixed zone
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Now returns the clock's current instant in the fixed zone
func (c *Converter) Now() time.Time {
	t := c.clock.Now().In(c.loc)
	c.logger.WithField("now", t).Debug("current time in fixed zone")
	return t
}

// Today returns the calendar date of Now
func (c *Converter) Today() civil.Date {
	return civil.DateOf(c.Now())
}

// ToFixedZone returns the same instant expressed in the fixed zone
func (c *Converter) ToFixedZone(t time.Time) time.Time {
	out := t.In(c.loc)
	c.logger.WithFields(logrus.Fields{"from": t, "to": out}).Debug("converted to fixed zone")
	return out
}

// ToFixedZoneCivil reads a naive date-time as UTC and expresses it in the fixed zone
func (c *Converter) ToFixedZoneCivil(dt civil.DateTime) time.Time {
	c.logger.WithField("datetime", dt).Debug("naive datetime read as UTC")
	return c.ToFixedZone(dt.In(time.UTC))
}

// FromFixedZone expresses a fixed-zone value in target. A nil target means UTC.
//
// t must carry the fixed zone, or at least the same UTC offset the fixed zone
// has at that instant; otherwise its wall clock would be misread and
// ErrZoneMismatch is returned.
func (c *Converter) FromFixedZone(t time.Time, target *time.Location) (time.Time, error) {
	if !c.inFixedZone(t) {
		return time.Time{}, fmt.Errorf("%w: %s is not in %s", apperrors.ErrZoneMismatch, t.Format(time.RFC3339), c.loc)
	}
	if target == nil {
		target = time.UTC
	}

	out := t.In(target)
	c.logger.WithFields(logrus.Fields{"from": t, "to": out, "target": target.String()}).Debug("converted from fixed zone")
	return out, nil
}

// FromFixedZoneCivil reads a naive date-time as civil time in the fixed zone
// and expresses it in target. See Localize for DST gap and overlap handling.
func (c *Converter) FromFixedZoneCivil(dt civil.DateTime, target *time.Location) (time.Time, error) {
	t, err := Localize(dt, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return c.FromFixedZone(t, target)
}

// FromFixedZoneTo is FromFixedZone with the target given by IANA name
func (c *Converter) FromFixedZoneTo(t time.Time, targetZone string) (time.Time, error) {
	target, err := LoadZone(targetZone)
	if err != nil {
		return time.Time{}, err
	}
	return c.FromFixedZone(t, target)
}

// DayBounds returns the first and last instants of d in the fixed zone
func (c *Converter) DayBounds(d civil.Date) (start, end time.Time) {
	noon := civil.DateTime{Date: d, Time: civil.Time{Hour: 12}}.In(c.loc)
	day := now.With(noon)
	return day.BeginningOfDay(), day.EndOfDay()
}

func (c *Converter) inFixedZone(t time.Time) bool {
	if t.Location() == c.loc {
		return true
	}
	_, got := t.Zone()
	_, want := t.In(c.loc).Zone()
	return got == want
}
