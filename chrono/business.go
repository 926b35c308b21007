package chrono

import (
	"time"

	"github.com/curtisnewbie/chrono/errs"
	"github.com/curtisnewbie/chrono/utillog"
	"golang.org/x/text/language"
)

// WeekendSet is the set of weekdays considered non-business days.
type WeekendSet map[time.Weekday]struct{}

func NewWeekendSet(days ...time.Weekday) WeekendSet {
	ws := make(WeekendSet, len(days))
	for _, d := range days {
		ws[d] = struct{}{}
	}
	return ws
}

func (ws WeekendSet) Contains(d time.Weekday) bool {
	_, ok := ws[d]
	return ok
}

// WeekendSource answers which weekdays a culture treats as the weekend.
type WeekendSource interface {
	WeekendDays(culture language.Tag) WeekendSet
}

// regions where the working week runs Sunday to Thursday
var fridaySaturdayRegions = map[string]struct{}{
	"BH": {}, "BD": {}, "DZ": {}, "EG": {}, "IL": {}, "IQ": {}, "JO": {},
	"KW": {}, "LY": {}, "MV": {}, "OM": {}, "PS": {}, "QA": {}, "SA": {},
	"SD": {}, "SY": {}, "YE": {},
}

// regions where the weekend falls on Thursday and Friday
var thursdayFridayRegions = map[string]struct{}{
	"AF": {}, "IR": {},
}

type regionWeekendSource struct{}

func (regionWeekendSource) WeekendDays(culture language.Tag) WeekendSet {
	region, _ := culture.Region()
	r := region.String()
	if _, ok := fridaySaturdayRegions[r]; ok {
		return NewWeekendSet(time.Friday, time.Saturday)
	}
	if _, ok := thursdayFridayRegions[r]; ok {
		return NewWeekendSet(time.Thursday, time.Friday)
	}
	return NewWeekendSet(time.Saturday, time.Sunday)
}

var (
	weekendSource  WeekendSource = regionWeekendSource{}
	defaultCulture               = language.MustParse("en-US")
)

// Replace the ambient WeekendSource, e.g., with one backed by CLDR data.
func SetWeekendSource(s WeekendSource) {
	if s != nil {
		weekendSource = s
	}
}

// Set the ambient culture used when callers pass none.
func SetDefaultCulture(tag language.Tag) {
	defaultCulture = tag
}

func DefaultCulture() language.Tag {
	return defaultCulture
}

// Weekend days of the given culture, per the ambient WeekendSource.
func WeekendDaysOf(culture language.Tag) WeekendSet {
	return weekendSource.WeekendDays(culture)
}

// Whether t falls on a business day.
//
// With a non-nil loc, the weekday is read from t viewed in that zone,
// otherwise t's own offset is used unchanged. A nil weekend set resolves to
// the ambient default culture's weekend.
func IsBusinessDay(t Instant, loc *time.Location, weekend WeekendSet) bool {
	if loc != nil {
		t = t.In(loc)
	}
	if weekend == nil {
		weekend = WeekendDaysOf(DefaultCulture())
	}
	return !weekend.Contains(t.Weekday())
}

// Step count business days from t, skipping weekend days.
//
// count may be negative to step backwards. A zero count returns t unchanged
// without touching the zone or weekend collaborators. A weekend set covering
// all seven days can never land on a business day and is rejected with
// errs.ErrInvalidWeekendSet rather than looping forever.
func AddBusinessDays(t Instant, count int, loc *time.Location, weekend WeekendSet) (Instant, error) {
	if count == 0 {
		return t, nil
	}
	if weekend == nil {
		weekend = WeekendDaysOf(DefaultCulture())
	}
	if len(weekend) >= 7 {
		utillog.ErrorLog("AddBusinessDays: weekend set covers all seven days")
		return Instant{}, errs.ErrInvalidWeekendSet.WithInternalMsg("weekend set covers all seven days")
	}

	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for count > 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(t, loc, weekend) {
			count--
		}
	}
	return t, nil
}
