package chrono

import (
	"strings"
	"time"
)

const (
	fmtElemYear  = "2006"
	fmtElemMonth = "01"
	fmtElemDay   = "02"
	fmtElemHour  = "15"
	fmtElemMin   = "04"
	fmtElemSec   = "05"
)

/*
	yyyy : 2006
	MM : 01
	dd : 02
	HH : 15
	mm : 04
	ss : 05

	yyyy-MM-dd HH:mm:ss
	2006-01-02 15:04:05
*/
var formatDict = map[string]string{
	"yyyy": fmtElemYear,
	"MM":   fmtElemMonth,
	"dd":   fmtElemDay,
	"HH":   fmtElemHour,
	"mm":   fmtElemMin,
	"ss":   fmtElemSec,
}

// Translate yyyy-MM-dd HH:mm:ss style patterns to Go time layouts.
func TranslateFormat(format string) string {
	for k := range formatDict {
		format = strings.ReplaceAll(format, k, formatDict[k])
	}
	return format
}

// Format t using a yyyy-MM-dd HH:mm:ss style pattern.
func FormatPattern(t Instant, pattern string) string {
	return t.Unwrap().Format(TranslateFormat(pattern))
}

// Format t viewed in loc using a yyyy-MM-dd HH:mm:ss style pattern. A nil loc
// formats t in its own offset.
func FormatPatternInZone(t Instant, pattern string, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return FormatPattern(t, pattern)
}
