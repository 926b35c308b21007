package chrono

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

const (
	unixSecPersudoMax = 9999999999 // 2286-11-21, should be enough :D

	// A tick is 100 nanoseconds, the smallest amount of time this library
	// represents. Sub-tick amounts are truncated, never rounded.
	TickDuration = 100 * time.Nanosecond

	TicksPerMicrosecond = 10
	TicksPerMillisecond = 10_000
	TicksPerSecond      = 10_000_000

	ClassicDateTimeLocaleFormat = "2006/01/02 15:04:05 (MST)"
	ClassicDateTimeFormat       = "2006/01/02 15:04:05"
	StdDateTimeFormat           = "2006-01-02 15:04:05"
	StdDateTimeMilliFormat      = "2006-01-02 15:04:05.000"
	StdDateTimeLocaleFormat     = "2006-01-02 15:04:05 (MST)"
	SQLDateTimeFormat           = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT      = "2006-01-02T15:04:05.999999"
	SQLDateFormat               = "2006-01-02"
	FileSafeTimeFormat          = "20060102_150405"
)

var (
	instantMarshalFormat = ""
)

// Instant is an absolute point in time with a fixed UTC offset attached.
//
// Instant embeds time.Time, calendar fields (Year, Month, Day, Hour, ...,
// Weekday) are always read in the instant's own offset, no implicit
// conversion to UTC or the system zone is ever performed.
//
// This type implements sql.Scanner and driver.Valuer, it can be safely used in
// GORM just like time.Time. It also implements json/encoding Marshaler and
// Unmarshaler (epoch milliseconds by default, see SetInstantMarshalFormat).
//
// To cast from time.Time, use [Wrap]. To cast back, use [Instant.Unwrap].
type Instant struct {
	time.Time
}

func Now() Instant {
	return Wrap(time.Now())
}

func NowUTC() Instant {
	return Wrap(time.Now().UTC())
}

func Wrap(t time.Time) Instant {
	return Instant{t}
}

// Construct an Instant from calendar fields at the given fixed offset.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	return Wrap(time.Date(year, month, day, hour, min, sec, nsec, loc))
}

func (t Instant) GoString() string {
	return t.String()
}

func (t Instant) Unwrap() time.Time {
	return t.Time
}

func (t Instant) Add(d time.Duration) Instant {
	t.Time = t.Time.Add(d)
	return t
}

// Add n ticks (100ns each).
func (t Instant) AddTicks(n int64) Instant {
	return t.Add(time.Duration(n) * TickDuration)
}

// Truncate the instant down to its tick (100ns) grid.
func (t Instant) TruncateTicks() Instant {
	return t.Add(-time.Duration(t.Nanosecond() % 100))
}

// Ticks since unix epoch. Sub-tick nanoseconds are truncated.
func (t Instant) UnixTicks() int64 {
	return t.Unix()*TicksPerSecond + int64(t.Nanosecond())/100
}

func (t Instant) Sub(u Instant) time.Duration {
	return t.Time.Sub(u.Time)
}

func (t Instant) AddDate(years int, months int, days int) Instant {
	t.Time = t.Time.AddDate(years, months, days)
	return t
}

func (t Instant) After(u Instant) bool {
	return t.Time.After(u.Time)
}

func (t Instant) Before(u Instant) bool {
	return t.Time.Before(u.Time)
}

// Same point in time viewed in z. The absolute instant is unchanged.
func (t Instant) In(z *time.Location) Instant {
	return Wrap(t.Unwrap().In(z))
}

// Same point in time viewed at a fixed whole-hour UTC offset.
func (t Instant) InZone(diffInHours int) Instant {
	if diffInHours == 0 {
		return t.In(time.UTC)
	}
	return t.In(time.FixedZone("", diffInHours*60*60))
}

// The instant's own fixed UTC offset.
func (t Instant) Offset() time.Duration {
	_, off := t.Zone()
	return time.Duration(off) * time.Second
}

// Weekday stepping, always lands strictly in the past (7 days when already on w).
func (t Instant) LastWeekday(w time.Weekday) Instant {
	curr := t.Weekday()
	diff := 0
	if curr < w {
		diff = 7 - int(w-curr)
	} else if curr == w {
		diff = 7
	} else {
		diff = int(curr - w)
	}
	return t.AddDate(0, 0, -diff)
}

// Weekday stepping, always lands strictly in the future (7 days when already on w).
func (t Instant) NextWeekday(w time.Weekday) Instant {
	curr := t.Weekday()
	diff := 0
	if curr < w {
		diff = int(w - curr)
	} else if curr == w {
		diff = 7
	} else {
		diff = 7 - int(curr-w)
	}
	return t.AddDate(0, 0, diff)
}

// Format as 2006-01-02
func (t Instant) FormatDate() string {
	return t.Unwrap().Format(time.DateOnly)
}

// Format as 2006/01/02 15:04:05
func (t Instant) FormatClassic() string {
	return t.Unwrap().Format(ClassicDateTimeFormat)
}

// Format as 2006/01/02 15:04:05 (MST)
func (t Instant) FormatClassicLocale() string {
	return t.Unwrap().Format(ClassicDateTimeLocaleFormat)
}

// Format as 2006-01-02 15:04:05
func (t Instant) FormatStd() string {
	return t.Unwrap().Format(StdDateTimeFormat)
}

// Format as 2006-01-02 15:04:05.000
func (t Instant) FormatStdMilli() string {
	return t.Unwrap().Format(StdDateTimeMilliFormat)
}

// Format as 2006-01-02 15:04:05 (MST)
func (t Instant) FormatStdLocale() string {
	return t.Unwrap().Format(StdDateTimeLocaleFormat)
}

// Format as [time.RFC3339]
func (t Instant) FormatISO8601() string {
	return t.Unwrap().Format(time.RFC3339)
}

// Format as [time.RFC3339Nano]
func (t Instant) FormatISO8601Nano() string {
	return t.Unwrap().Format(time.RFC3339Nano)
}

// Format as 20060102_150405, usable in file names.
func (t Instant) FormatFileSafe() string {
	return t.Unwrap().Format(FileSafeTimeFormat)
}

// Implements driver.Valuer in database/sql.
func (t Instant) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	// microsecond precision is the common denominator across drivers, and it
	// keeps the stored value on the tick grid
	return t.Truncate(time.Microsecond), nil
}

func (t Instant) String() string {
	return t.Unwrap().Format("2006-01-02 15:04:05.999999 (MST)")
}

// Implements encoding/json Marshaler
func (t Instant) MarshalJSON() ([]byte, error) {
	var v string
	if instantMarshalFormat != "" {
		v = strconv.Quote(t.Unwrap().Format(instantMarshalFormat)) // other format configured
	} else {
		v = fmt.Sprintf("%d", t.UnixMilli()) // epoch milli by default
	}
	return []byte(v), nil
}

// Implements encoding/json Unmarshaler.
func (t *Instant) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" {
		return nil
	}
	millisec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if uq, uerr := strconv.Unquote(s); uerr == nil {
			s = uq
		}
		if xer := t.Scan(s); xer != nil {
			return fmt.Errorf("failed to UnmarshalJSON, tried epoch milliseconds format %w, tried '2006-01-02 15:04:05.999999' format %w", err, xer)
		}
		return nil
	}

	pt := time.UnixMilli(millisec)
	*t = Wrap(pt)
	return nil
}

// Implements sql.Scanner in database/sql.
func (et *Instant) Scan(value interface{}) error {
	return et.ScanLoc(value, nil)
}

func (et *Instant) ScanLoc(value interface{}, loc *time.Location) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		if loc != nil {
			v = v.In(loc)
		}
		*et = Wrap(v)
	case []byte:
		if loc == nil {
			loc = time.Local
		}
		t, err := FuzzParseTimeLoc(jsonParseTimeFormats, string(v), loc)
		if err != nil {
			return err
		}
		*et = Wrap(t)
	case string:
		if loc == nil {
			loc = time.Local
		}
		t, err := FuzzParseTimeLoc(jsonParseTimeFormats, v, loc)
		if err != nil {
			return err
		}
		*et = Wrap(t)
	case *string:
		return et.ScanLoc(*v, loc)
	case int64, int, uint, uint64, int32, uint32, int16, uint16, *int64, *int, *uint, *uint64, *int32, *uint32, *int16, *uint16:
		if loc == nil {
			loc = time.Local
		}
		val, err := cast.ToInt64E(reflect.Indirect(reflect.ValueOf(v)).Interface())
		if err != nil {
			return err
		}
		if val > unixSecPersudoMax {
			*et = Wrap(time.UnixMilli(val).In(loc)) // in milli-sec
		} else {
			*et = Wrap(time.Unix(val, 0).In(loc)) // in sec
		}
	default:
		return fmt.Errorf("invalid field type '%T' for Instant, unable to convert, %#v", value, v)
	}
	return nil
}

var jsonParseTimeFormats = []string{
	time.RFC3339Nano,
	SQLDateTimeFormat,
	SQLDateFormat,
	SQLDateTimeFormatWithT,
}

func AddTimeParseFormat(fmt ...string) {
	for _, f := range fmt {
		found := false
		for _, e := range jsonParseTimeFormats {
			if e == f {
				found = true
				break
			}
		}
		if !found {
			jsonParseTimeFormats = append(jsonParseTimeFormats, f)
		}
	}
}

func SetTimeParseFormat(fmt ...string) {
	jsonParseTimeFormats = fmt
}

func FuzzParseTime(formats []string, value string) (time.Time, error) {
	return FuzzParseTimeLoc(formats, value, time.UTC)
}

func FuzzParseTimeLoc(formats []string, value string, loc *time.Location) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	var err error
	for _, f := range formats {
		t, err = time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("failed to parse time '%s'", value)
}

var classicDateTimeFmt = []string{SQLDateTimeFormat, ClassicDateTimeFormat}

// Parse classic datetime format using patterns: "2006-01-02 15:04:05", "2006/01/02 15:04:05".
func ParseClassicDateTime(val string, loc *time.Location) (time.Time, error) {
	return FuzzParseTimeLoc(classicDateTimeFmt, val, loc)
}

// Change the format Instant marshals to in JSON, e.g., chrono.StdDateTimeFormat.
//
// Empty format restores the default epoch-milliseconds behaviour.
func SetInstantMarshalFormat(fmt string) {
	instantMarshalFormat = fmt
}

func ParseInstant(v any) (Instant, error) {
	var t Instant
	return t, t.Scan(v)
}

func ParseInstantLoc(v any, loc *time.Location) (Instant, error) {
	var t Instant
	return t, t.ScanLoc(v, loc)
}
