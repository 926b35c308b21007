package chrono

import (
	"time"

	"github.com/curtisnewbie/chrono/errs"
	"github.com/curtisnewbie/chrono/utillog"
)

// LocalTime is a wall-clock date and time not yet tied to UTC or any offset.
//
// During a DST gap a LocalTime may never occur, during a fold it may occur
// twice. ZoneRules answers which is the case.
type LocalTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// The wall-clock fields of t, read in t's own offset.
func LocalTimeOf(t Instant) LocalTime {
	yyyy, mm, dd := t.Date()
	return LocalTime{
		Year:   yyyy,
		Month:  mm,
		Day:    dd,
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// The wall-clock fields interpreted at UTC. This is a computational device,
// subtracting a zone's offset from it yields the absolute instant at which
// the zone's clocks show these fields.
func (lt LocalTime) AsUTC() time.Time {
	return time.Date(lt.Year, lt.Month, lt.Day, lt.Hour, lt.Minute, lt.Second, 0, time.UTC)
}

// lt advanced by n minutes, with field normalization.
func (lt LocalTime) AddMinutes(n int) LocalTime {
	return LocalTimeOf(Wrap(lt.AsUTC().Add(time.Duration(n) * time.Minute)))
}

// ZoneRules answers offset and ambiguity queries for one time zone.
//
// The library never caches answers, a fresh query is made per call. Rules are
// modeled as a capability interface so gap/fold edge cases can be exercised
// with deterministic fakes instead of a system timezone database.
type ZoneRules interface {
	// Instantaneous UTC offset (including DST) at the absolute instant t.
	OffsetAt(t Instant) time.Duration
	// Whether lt falls in a DST gap and never occurs on this zone's clocks.
	IsInvalidLocalTime(lt LocalTime) bool
	// Whether lt occurs twice because of a DST fold.
	IsAmbiguousLocalTime(lt LocalTime) bool
	// The two candidate offsets of an ambiguous local time, in no particular
	// order.
	AmbiguousOffsets(lt LocalTime) (time.Duration, time.Duration)
	// The same absolute instant viewed on this zone's clocks.
	Convert(t Instant) Instant
}

// LocationRules implements ZoneRules over a stdlib *time.Location.
//
// Gap/fold detection probes the location's offsets around the wall-clock time
// and keeps the offsets under which the wall clock round-trips. Zero surviving
// offsets mean a gap, two mean a fold.
type LocationRules struct {
	loc *time.Location
}

func RulesOf(loc *time.Location) *LocationRules {
	if loc == nil {
		loc = time.UTC
	}
	return &LocationRules{loc: loc}
}

// Load zone rules by IANA zone identifier, e.g., "Europe/Berlin".
func LoadRules(name string) (*LocationRules, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.ErrIllegalArgument.Wrapf(err, "unknown zone '%v'", name)
	}
	return RulesOf(loc), nil
}

func (z *LocationRules) Location() *time.Location {
	return z.loc
}

func (z *LocationRules) OffsetAt(t Instant) time.Duration {
	_, off := t.In(z.loc).Zone()
	return time.Duration(off) * time.Second
}

func (z *LocationRules) Convert(t Instant) Instant {
	return t.In(z.loc)
}

func (z *LocationRules) IsInvalidLocalTime(lt LocalTime) bool {
	return len(z.candidateOffsets(lt)) == 0
}

func (z *LocationRules) IsAmbiguousLocalTime(lt LocalTime) bool {
	return len(z.candidateOffsets(lt)) >= 2
}

func (z *LocationRules) AmbiguousOffsets(lt LocalTime) (time.Duration, time.Duration) {
	cand := z.candidateOffsets(lt)
	if len(cand) < 2 {
		if len(cand) == 1 {
			return cand[0], cand[0]
		}
		return 0, 0
	}
	return cand[0], cand[1]
}

// Offsets under which lt actually occurs in this location.
//
// Transitions are more than a day apart in every real zone, so probing the
// offset one day before and after the nominal time discovers both sides of
// any transition lt may straddle.
func (z *LocationRules) candidateOffsets(lt LocalTime) []time.Duration {
	guess := lt.AsUTC()
	seen := map[time.Duration]bool{}
	var out []time.Duration
	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, sec := guess.Add(probe).In(z.loc).Zone()
		off := time.Duration(sec) * time.Second
		if seen[off] {
			continue
		}
		seen[off] = true
		if LocalTimeOf(Wrap(guess.Add(-off).In(z.loc))) == lt {
			out = append(out, off)
		}
	}
	return out
}

// Instantaneous UTC offset at t as a signed duration.
func OffsetAt(t Instant, rules ZoneRules) (time.Duration, error) {
	if rules == nil {
		return 0, errs.ErrIllegalArgument.WithInternalMsg("zone rules must not be nil")
	}
	return rules.OffsetAt(t), nil
}

// Instantaneous UTC offset at t in fractional hours, e.g., 5.5 for +05:30.
func OffsetHoursAt(t Instant, rules ZoneRules) (float64, error) {
	d, err := OffsetAt(t, rules)
	if err != nil {
		return 0, err
	}
	return d.Hours(), nil
}

// the longest real-world DST transition is well under a day of minutes
const gapScanLimitMinutes = 24 * 60

// Resolve the UTC hour at which the zone's clocks show localHour on the local
// calendar date of ref.
//
// Only ref's date matters (as seen on the zone's clocks), its time-of-day is
// ignored. When localHour falls in a DST gap the first valid local time at or
// after it is used. When it falls in a fold, the earlier of the two possible
// UTC instants wins, i.e. the larger candidate offset is subtracted.
//
// Only the hour component of the resulting UTC instant is returned, midnight
// rollover is not reported.
func LocalHourToUTCHour(ref Instant, localHour int, rules ZoneRules) (int, error) {
	if rules == nil {
		return 0, errs.ErrIllegalArgument.WithInternalMsg("zone rules must not be nil")
	}
	if localHour < 0 || localHour > 23 {
		return 0, errs.ErrOutOfRange.WithInternalMsg("hour %v is outside [0,23]", localHour)
	}

	local := rules.Convert(ref)
	yyyy, mm, dd := local.Date()
	lt := LocalTime{Year: yyyy, Month: mm, Day: dd, Hour: localHour}

	if rules.IsInvalidLocalTime(lt) {
		scanned := 0
		for rules.IsInvalidLocalTime(lt) {
			lt = lt.AddMinutes(1)
			scanned++
			if scanned > gapScanLimitMinutes {
				return 0, errs.ErrIllegalArgument.WithInternalMsg(
					"no valid local time within a day of %04d-%02d-%02d %02d:00, zone rules look broken",
					yyyy, mm, dd, localHour)
			}
		}
		utillog.DebugLog("LocalHourToUTCHour: %02d:00 falls in a DST gap, advanced %d minute(s)", localHour, scanned)
	}

	var off time.Duration
	if rules.IsAmbiguousLocalTime(lt) {
		// earlier UTC instant wins, the larger offset subtracts to the
		// earlier point
		o1, o2 := rules.AmbiguousOffsets(lt)
		off = o1
		if o2 > o1 {
			off = o2
		}
	} else {
		// two-pass resolution, the first pass may read the offset from the
		// wrong side of a transition, the second corrects it
		guess := Wrap(lt.AsUTC())
		off = rules.OffsetAt(guess.Add(-rules.OffsetAt(guess)))
	}

	utc := lt.AsUTC().Add(-off)
	return utc.In(time.UTC).Hour(), nil
}
