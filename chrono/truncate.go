package chrono

import (
	"time"
)

// Truncate t down to the start of the unit it falls in.
//
// Truncation happens in the instant's own offset, no timezone conversion is
// performed. Weeks start on Monday (ISO-8601).
func StartOf(t Instant, unit Unit) (Instant, error) {
	switch unit {
	case UnitTick:
		return t.TruncateTicks(), nil
	case UnitNanosecond:
		// sub-tick amounts are not representable, a nanosecond boundary is a
		// tick boundary
		return t.TruncateTicks(), nil
	case UnitMicrosecond:
		return t.Add(-time.Duration(t.Nanosecond() % 1_000)), nil
	case UnitMillisecond:
		return t.Add(-time.Duration(t.Nanosecond() % 1_000_000)), nil
	case UnitSecond:
		yyyy, mm, dd := t.Date()
		return Wrap(time.Date(yyyy, mm, dd, t.Hour(), t.Minute(), t.Second(), 0, t.Location())), nil
	case UnitMinute:
		yyyy, mm, dd := t.Date()
		return Wrap(time.Date(yyyy, mm, dd, t.Hour(), t.Minute(), 0, 0, t.Location())), nil
	case UnitHour:
		yyyy, mm, dd := t.Date()
		return Wrap(time.Date(yyyy, mm, dd, t.Hour(), 0, 0, 0, t.Location())), nil
	case UnitDay:
		return t.StartOfDay(), nil
	case UnitWeek:
		d := t.StartOfDay()
		// back to the most recent Monday
		back := (7 + int(d.Weekday()) - int(time.Monday)) % 7
		return d.AddDate(0, 0, -back), nil
	case UnitMonth:
		yyyy, mm, _ := t.Date()
		return Wrap(time.Date(yyyy, mm, 1, 0, 0, 0, 0, t.Location())), nil
	case UnitQuarter:
		yyyy, mm, _ := t.Date()
		qm := time.Month(quarterOf(mm)*3 + 1)
		return Wrap(time.Date(yyyy, qm, 1, 0, 0, 0, 0, t.Location())), nil
	case UnitYear:
		return Wrap(time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())), nil
	case UnitDecade:
		yyyy := t.Year() - mod(t.Year(), 10)
		return Wrap(time.Date(yyyy, time.January, 1, 0, 0, 0, 0, t.Location())), nil
	}
	return Instant{}, unsupportedUnit("StartOf", unit)
}

// The last representable instant of the unit t falls in, one tick (100ns)
// before the start of the next unit.
//
// StartOf(t, u) <= t <= EndOf(t, u) for every supported unit.
func EndOf(t Instant, unit Unit) (Instant, error) {
	start, err := StartOf(t, unit)
	if err != nil {
		return Instant{}, err
	}
	switch unit {
	case UnitMonth, UnitQuarter, UnitYear, UnitDecade:
		return start.addCalendarUnits(1, unit).AddTicks(-1), nil
	default:
		d, _ := unit.fixed()
		if d <= TickDuration {
			return start, nil
		}
		return start.Add(d - TickDuration), nil
	}
}

// At 00:00:00.
func (t Instant) StartOfDay() Instant {
	yyyy, mm, dd := t.Date()
	return Wrap(time.Date(yyyy, mm, dd, 0, 0, 0, 0, t.Location()))
}

// At 23:59:59.9999999, the last tick of the day.
func (t Instant) EndOfDay() Instant {
	yyyy, mm, dd := t.Date()
	return Wrap(time.Date(yyyy, mm, dd, 23, 59, 59, 999_999_900, t.Location()))
}

func (t Instant) StartOfMonth() Instant {
	s, _ := StartOf(t, UnitMonth)
	return s
}

func (t Instant) EndOfMonth() Instant {
	e, _ := EndOf(t, UnitMonth)
	return e
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
