package chrono

import (
	"errors"
	"testing"
	"time"

	"github.com/curtisnewbie/chrono/errs"
	"golang.org/x/text/language"
)

func TestWeekendDaysOf(t *testing.T) {
	TestDeepEqual(t, NewWeekendSet(time.Saturday, time.Sunday), WeekendDaysOf(language.MustParse("en-US")))
	TestDeepEqual(t, NewWeekendSet(time.Saturday, time.Sunday), WeekendDaysOf(language.MustParse("de-DE")))
	TestDeepEqual(t, NewWeekendSet(time.Friday, time.Saturday), WeekendDaysOf(language.MustParse("ar-EG")))
	TestDeepEqual(t, NewWeekendSet(time.Thursday, time.Friday), WeekendDaysOf(language.MustParse("fa-IR")))
}

func TestIsBusinessDay(t *testing.T) {
	weekend := NewWeekendSet(time.Saturday, time.Sunday)
	// 2024-06-10 is a monday
	for i := 0; i < 7; i++ {
		d := utc(2024, 6, 10, 12, 0, 0).AddDate(0, 0, i)
		expected := !weekend.Contains(d.Weekday())
		TestEqual(t, expected, IsBusinessDay(d, nil, weekend))
	}

	// every day in the weekend set is a non-business day, whatever the set
	friSat := WeekendDaysOf(language.MustParse("ar-EG"))
	TestEqual(t, false, IsBusinessDay(utc(2024, 6, 14, 12, 0, 0), nil, friSat)) // friday
	TestEqual(t, true, IsBusinessDay(utc(2024, 6, 16, 12, 0, 0), nil, friSat)) // sunday
}

func TestIsBusinessDayZoneConversion(t *testing.T) {
	// saturday 00:30 at +02:00 is still friday 22:30 in UTC
	x := Wrap(time.Date(2024, 6, 15, 0, 30, 0, 0, time.FixedZone("", 2*3600)))
	TestEqual(t, false, IsBusinessDay(x, nil, nil))
	TestEqual(t, true, IsBusinessDay(x, time.UTC, nil))
}

func TestAddBusinessDays(t *testing.T) {
	friday := utc(2024, 6, 14, 10, 0, 0)
	monday := utc(2024, 6, 17, 10, 0, 0)

	v, err := AddBusinessDays(friday, 1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	TestEqual(t, "2024-06-17", v.FormatDate())
	TestEqual(t, time.Monday, v.Weekday())

	v, err = AddBusinessDays(monday, -1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	TestEqual(t, "2024-06-14", v.FormatDate())
	TestEqual(t, time.Friday, v.Weekday())

	// multiple weeks worth of steps
	v, err = AddBusinessDays(monday, 10, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	TestEqual(t, "2024-07-01", v.FormatDate())

	// time of day is preserved
	TestEqual(t, 10, v.Hour())
}

func TestAddBusinessDaysZeroNoop(t *testing.T) {
	x := utc(2024, 6, 15, 10, 0, 0) // saturday
	v, err := AddBusinessDays(x, 0, nil, NewWeekendSet(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(x.Time) {
		t.Fatalf("zero count must return the input unchanged, got %v", v)
	}
}

func TestAddBusinessDaysAllWeekend(t *testing.T) {
	all := NewWeekendSet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
	_, err := AddBusinessDays(Now(), 1, nil, all)
	if !errors.Is(err, errs.ErrInvalidWeekendSet) {
		t.Fatalf("expected ErrInvalidWeekendSet, got %v", err)
	}
}

func TestDefaultCulture(t *testing.T) {
	prev := DefaultCulture()
	defer SetDefaultCulture(prev)

	SetDefaultCulture(language.MustParse("ar-EG"))
	// 2024-06-14 is a friday, weekend under the ambient culture
	TestEqual(t, false, IsBusinessDay(utc(2024, 6, 14, 12, 0, 0), nil, nil))
	TestEqual(t, true, IsBusinessDay(utc(2024, 6, 16, 12, 0, 0), nil, nil))
}
