package chrono

import (
	"time"

	"github.com/curtisnewbie/chrono/errs"
	"github.com/spf13/cast"
)

// Unit of time.
//
// Unit is a closed set: every operation that accepts a Unit switches over all
// of the values below and returns errs.ErrUnsupportedUnit for anything else.
// Adding a new Unit deliberately forces every call site to be revisited.
type Unit int

const (
	UnitTick Unit = iota // 100 nanoseconds, the smallest representable unit
	UnitNanosecond
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
	UnitDecade
)

var unitNames = map[Unit]string{
	UnitTick:        "tick",
	UnitNanosecond:  "nanosecond",
	UnitMicrosecond: "microsecond",
	UnitMillisecond: "millisecond",
	UnitSecond:      "second",
	UnitMinute:      "minute",
	UnitHour:        "hour",
	UnitDay:         "day",
	UnitWeek:        "week",
	UnitMonth:       "month",
	UnitQuarter:     "quarter",
	UnitYear:        "year",
	UnitDecade:      "decade",
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return "unknown"
}

// Whether u is one of the enumerated units.
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// Fixed duration of u, for units whose length never varies.
//
// Month and coarser units are calendar units without a fixed duration, ok is
// false for those. A week is treated as a fixed 7 x 24h span.
func (u Unit) fixed() (time.Duration, bool) {
	switch u {
	case UnitTick:
		return TickDuration, true
	case UnitNanosecond:
		return time.Nanosecond, true
	case UnitMicrosecond:
		return time.Microsecond, true
	case UnitMillisecond:
		return time.Millisecond, true
	case UnitSecond:
		return time.Second, true
	case UnitMinute:
		return time.Minute, true
	case UnitHour:
		return time.Hour, true
	case UnitDay:
		return 24 * time.Hour, true
	case UnitWeek:
		return 7 * 24 * time.Hour, true
	}
	return 0, false
}

// Parse a Unit from its name, e.g., "month".
//
// v may be a string or anything cast can coerce to one. Names are matched
// case-sensitively in their lowercase form.
func ParseUnit(v any) (Unit, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, errs.ErrUnsupportedUnit.Wrapf(err, "cannot interpret %#v as a unit name", v)
	}
	for u, n := range unitNames {
		if n == s {
			return u, nil
		}
	}
	return 0, errs.ErrUnsupportedUnit.WithInternalMsg("unknown unit '%v'", s)
}

func unsupportedUnit(op string, u Unit) error {
	return errs.ErrUnsupportedUnit.WithInternalMsg("%v does not support unit '%v'", op, u)
}
