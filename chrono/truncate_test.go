package chrono

import (
	"errors"
	"testing"
	"time"

	"github.com/curtisnewbie/chrono/errs"
)

func TestStartOf(t *testing.T) {
	z := time.FixedZone("", 2*60*60)
	x := Wrap(time.Date(2024, 5, 17, 13, 45, 30, 123_456_789, z)) // friday

	cases := []struct {
		unit     Unit
		expected Instant
	}{
		{UnitTick, Wrap(time.Date(2024, 5, 17, 13, 45, 30, 123_456_700, z))},
		{UnitNanosecond, Wrap(time.Date(2024, 5, 17, 13, 45, 30, 123_456_700, z))},
		{UnitMicrosecond, Wrap(time.Date(2024, 5, 17, 13, 45, 30, 123_456_000, z))},
		{UnitMillisecond, Wrap(time.Date(2024, 5, 17, 13, 45, 30, 123_000_000, z))},
		{UnitSecond, Wrap(time.Date(2024, 5, 17, 13, 45, 30, 0, z))},
		{UnitMinute, Wrap(time.Date(2024, 5, 17, 13, 45, 0, 0, z))},
		{UnitHour, Wrap(time.Date(2024, 5, 17, 13, 0, 0, 0, z))},
		{UnitDay, Wrap(time.Date(2024, 5, 17, 0, 0, 0, 0, z))},
		{UnitWeek, Wrap(time.Date(2024, 5, 13, 0, 0, 0, 0, z))}, // monday
		{UnitMonth, Wrap(time.Date(2024, 5, 1, 0, 0, 0, 0, z))},
		{UnitQuarter, Wrap(time.Date(2024, 4, 1, 0, 0, 0, 0, z))},
		{UnitYear, Wrap(time.Date(2024, 1, 1, 0, 0, 0, 0, z))},
		{UnitDecade, Wrap(time.Date(2020, 1, 1, 0, 0, 0, 0, z))},
	}
	for _, c := range cases {
		v, err := StartOf(x, c.unit)
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equal(c.expected.Time) {
			t.Fatalf("StartOf %v: expected %v, actual %v", c.unit, c.expected, v)
		}
		// truncation must preserve the instant's own offset
		TestEqual(t, x.Offset(), v.Offset())
	}

	_, err := StartOf(x, Unit(99))
	if !errors.Is(err, errs.ErrUnsupportedUnit) {
		t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
	}
}

func TestStartOfWeekOnMonday(t *testing.T) {
	mon := utc(2024, 5, 13, 0, 0, 0)
	v, err := StartOf(mon, UnitWeek)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(mon.Time) {
		t.Fatalf("monday midnight must truncate to itself, got %v", v)
	}

	sun := utc(2024, 5, 19, 23, 0, 0)
	v, err = StartOf(sun, UnitWeek)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(mon.Time) {
		t.Fatalf("sunday must truncate back to monday, got %v", v)
	}
}

func TestEndOfMonthLiteral(t *testing.T) {
	x := utc(2024, 1, 31, 0, 0, 0)

	start, err := StartOf(x, UnitMonth)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(utc(2024, 1, 1, 0, 0, 0).Time) {
		t.Fatalf("expected 2024-01-01T00:00:00Z, got %v", start)
	}

	// 2024-01-31T23:59:59.9999999, one tick before february
	end, err := EndOf(x, UnitMonth)
	if err != nil {
		t.Fatal(err)
	}
	expected := Wrap(time.Date(2024, 1, 31, 23, 59, 59, 999_999_900, time.UTC))
	if !end.Equal(expected.Time) {
		t.Fatalf("expected %v, got %v", expected, end)
	}
	TestEqual(t, TickDuration, utc(2024, 2, 1, 0, 0, 0).Sub(end))

	// adding one whole month to the unit start lands exactly on the next
	// month's start
	next, err := AddUnit(start, 1, UnitMonth)
	if err != nil {
		t.Fatal(err)
	}
	if !next.Equal(utc(2024, 2, 1, 0, 0, 0).Time) {
		t.Fatalf("expected 2024-02-01T00:00:00Z, got %v", next)
	}
}

func TestStartEndOfProperties(t *testing.T) {
	units := []Unit{
		UnitTick, UnitNanosecond, UnitMicrosecond, UnitMillisecond, UnitSecond,
		UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitQuarter,
		UnitYear, UnitDecade,
	}
	samples := []Instant{
		Wrap(time.Date(2024, 2, 29, 12, 34, 56, 789_000_100, time.UTC)),
		Wrap(time.Date(2023, 12, 31, 23, 59, 59, 999_999_900, time.UTC)),
		Wrap(time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("", -5*3600))),
	}
	for _, x := range samples {
		for _, u := range units {
			start, err := StartOf(x, u)
			if err != nil {
				t.Fatal(err)
			}
			end, err := EndOf(x, u)
			if err != nil {
				t.Fatal(err)
			}
			if start.After(x) || x.After(end) {
				t.Fatalf("unit %v: expected %v <= %v <= %v", u, start, x, end)
			}

			// end-of-period is stable within the period
			endOfStart, err := EndOf(start, u)
			if err != nil {
				t.Fatal(err)
			}
			if !endOfStart.Equal(end.Time) {
				t.Fatalf("unit %v: EndOf(StartOf(x)) %v != EndOf(x) %v", u, endOfStart, end)
			}
		}
	}
}

func TestStartEndOfDay(t *testing.T) {
	x := utc(2024, 5, 17, 13, 45, 30)
	TestEqual(t, "2024-05-17", x.StartOfDay().FormatDate())
	TestEqual(t, 0, x.StartOfDay().Hour())
	TestEqual(t, 23, x.EndOfDay().Hour())
	TestEqual(t, TickDuration, x.AddDate(0, 0, 1).StartOfDay().Sub(x.EndOfDay()))
}

func TestStartEndOfMonthHelpers(t *testing.T) {
	x := utc(2024, 2, 15, 10, 0, 0)
	TestEqual(t, "2024-02-01", x.StartOfMonth().FormatDate())
	TestEqual(t, "2024-02-29", x.EndOfMonth().FormatDate())
}
