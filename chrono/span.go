package chrono

import (
	"time"
)

// Span is an elapsed calendar distance: Whole full units plus the Fraction of
// the next unit interval that has passed, Fraction always in [0, 1).
//
// The defining invariant: start.addUnits(Whole) <= later < start.addUnits(Whole+1).
type Span struct {
	Whole    int
	Fraction float64
}

// Whole + Fraction as a single float.
func (s Span) Units() float64 {
	return float64(s.Whole) + s.Fraction
}

// Count the whole calendar units between from and to.
//
// Only month, quarter and year are meaningful here, other units have fixed
// durations and never need the calendar-aware catch-up check.
//
// The result is the distance regardless of argument order (arguments are
// swapped when reversed), callers needing directionality must track the sign
// themselves.
func WholeUnitsBetween(from, to Instant, unit Unit) (int, error) {
	if to.Before(from) {
		from, to = to, from
	}

	var naive int
	switch unit {
	case UnitMonth:
		naive = (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	case UnitQuarter:
		naive = (to.Year()-from.Year())*4 + quarterOf(to.Month()) - quarterOf(from.Month())
	case UnitYear:
		naive = to.Year() - from.Year()
	default:
		return 0, unsupportedUnit("WholeUnitsBetween", unit)
	}

	// the naive field subtraction overshoots when to's day-of-month or
	// time-of-day hasn't caught up within the final partial unit
	if naive > 0 && from.addCalendarUnits(naive, unit).After(to) {
		naive--
	}
	return naive, nil
}

// Calendar-exact distance between from and to in the given unit.
//
// The fractional part is measured against the actual next interval, a
// 28/29/30/31-day month or a 365/366-day year, never a fixed average. When to
// falls exactly on a whole-unit boundary the fraction is exactly zero.
func SpanBetween(from, to Instant, unit Unit) (Span, error) {
	if to.Before(from) {
		from, to = to, from
	}

	whole, err := WholeUnitsBetween(from, to, unit)
	if err != nil {
		return Span{}, err
	}

	start := from.addCalendarUnits(whole, unit)
	if start.Equal(to.Time) {
		return Span{Whole: whole}, nil
	}

	end := start.addCalendarUnits(1, unit)
	frac := float64(to.Sub(start)) / float64(end.Sub(start))
	return Span{Whole: whole, Fraction: frac}, nil
}

// Calendar distance between from and the reference now, as a float count of
// the given unit.
//
// Sub-day units (and week) divide the elapsed duration directly, month,
// quarter and year dispatch to SpanBetween. When now is omitted the current
// UTC instant is used.
func Elapsed(from Instant, unit Unit, now ...Instant) (float64, error) {
	ref := NowUTC()
	if len(now) > 0 {
		ref = now[0]
	}

	switch unit {
	case UnitTick, UnitNanosecond, UnitMicrosecond, UnitMillisecond,
		UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek:
		d, _ := unit.fixed()
		elapsed := ref.Sub(from)
		if elapsed < 0 {
			elapsed = -elapsed
		}
		return float64(elapsed) / float64(d), nil
	case UnitMonth, UnitQuarter, UnitYear:
		s, err := SpanBetween(from, ref, unit)
		if err != nil {
			return 0, err
		}
		return s.Units(), nil
	}
	return 0, unsupportedUnit("Elapsed", unit)
}

// 0-based quarter index of a month.
func quarterOf(m time.Month) int {
	return (int(m) - 1) / 3
}

// Advance t by n whole calendar units, clamping day-of-month overflow
// (Jan 31 + 1 month lands on Feb 28/29, not Mar 2).
//
// Only calendar units (month, quarter, year, decade) are accepted, callers
// validate the unit beforehand.
func (t Instant) addCalendarUnits(n int, unit Unit) Instant {
	switch unit {
	case UnitMonth:
		return t.addMonthsClamped(n)
	case UnitQuarter:
		return t.addMonthsClamped(n * 3)
	case UnitYear:
		return t.addMonthsClamped(n * 12)
	case UnitDecade:
		return t.addMonthsClamped(n * 120)
	}
	panic("addCalendarUnits: not a calendar unit: " + unit.String())
}

func (t Instant) addMonthsClamped(n int) Instant {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + n
	ny := floorDiv(total, 12)
	nm := time.Month(total-ny*12) + 1
	if dim := daysIn(ny, nm); d > dim {
		d = dim
	}
	return Wrap(time.Date(ny, nm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
}

// Number of days in the given month. The zeroth day of the next month is the
// last day of this one.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
