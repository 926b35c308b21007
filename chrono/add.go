package chrono

import (
	"math"
	"time"
)

// Advance t by a possibly fractional amount of the given unit.
//
// Fixed-duration units (millisecond through week) add continuously. Tick,
// nanosecond and microsecond amounts are truncated to whole ticks, sub-tick
// remainders cannot be represented. Month and year split the amount into a
// whole calendar part (with day-of-month clamping) and a remainder scaled by
// the length of the month/year actually landed on. Fractional quarters are
// truncated to whole months and fractional decades to whole years, a
// documented coarseness.
func AddUnit(t Instant, amount float64, unit Unit) (Instant, error) {
	switch unit {
	case UnitTick:
		return t.AddTicks(int64(amount)), nil
	case UnitNanosecond:
		// 0.01 ticks per nanosecond, truncating
		return t.AddTicks(int64(amount / 100)), nil
	case UnitMicrosecond:
		return t.AddTicks(int64(amount * TicksPerMicrosecond)), nil
	case UnitMillisecond, UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek:
		d, _ := unit.fixed()
		return t.Add(time.Duration(amount * float64(d))), nil
	case UnitMonth:
		whole, frac := splitAmount(amount)
		landed := t.addMonthsClamped(whole)
		if frac != 0 {
			days := frac * float64(daysIn(landed.Year(), landed.Month()))
			landed = landed.Add(time.Duration(days * 24 * float64(time.Hour)))
		}
		return landed, nil
	case UnitQuarter:
		return t.addMonthsClamped(int(amount * 3)), nil
	case UnitYear:
		whole, frac := splitAmount(amount)
		landed := t.addMonthsClamped(whole * 12)
		if frac != 0 {
			days := 365.0
			if isLeapYear(landed.Year()) {
				days = 366.0
			}
			landed = landed.Add(time.Duration(frac * days * 24 * float64(time.Hour)))
		}
		return landed, nil
	case UnitDecade:
		return t.addMonthsClamped(int(amount*10) * 12), nil
	}
	return Instant{}, unsupportedUnit("AddUnit", unit)
}

// AddUnit with a negated amount.
func SubUnit(t Instant, amount float64, unit Unit) (Instant, error) {
	return AddUnit(t, -amount, unit)
}

// A (startAt, endAt) pair ending delay units before now and spanning span
// units. Pure composition of SubUnit.
func Window(now Instant, delay, span float64, unit Unit) (startAt Instant, endAt Instant, err error) {
	endAt, err = SubUnit(now, delay, unit)
	if err != nil {
		return Instant{}, Instant{}, err
	}
	startAt, err = SubUnit(endAt, span, unit)
	if err != nil {
		return Instant{}, Instant{}, err
	}
	return startAt, endAt, nil
}

// Split into the whole part (truncated toward zero) and the fractional
// remainder carrying the same sign.
func splitAmount(amount float64) (int, float64) {
	whole := math.Trunc(amount)
	return int(whole), amount - whole
}
