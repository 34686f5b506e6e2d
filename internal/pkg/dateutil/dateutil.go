// Package dateutil contains the calendar helpers used by the attendance
// report: tolerant timestamp parsing, date truncation and working-day
// enumeration. Attendance timestamps arrive as strings in a handful of
// historical formats, so parsing never reports an error to the caller;
// an unparseable value simply yields ok=false.
package dateutil

import (
	"strings"
	"time"
)

const ISODate = "2006-01-02"

// Accepted timestamp layouts, tried in order. The first match wins.
var flexibleLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	ISODate,
}

// ParseFlexible parses s against the accepted layouts in UTC.
func ParseFlexible(s string) (time.Time, bool) {
	return ParseFlexibleIn(time.UTC, s)
}

// ParseFlexibleIn parses s against the accepted layouts in the given
// location. Blank input and unmatched formats return ok=false.
func ParseFlexibleIn(loc *time.Location, s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOnly strips the time of day, returning midnight of the same calendar
// date in the same location. No timezone conversion is performed.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDaysBetween returns every Monday-Friday calendar date from start
// to end inclusive, ascending. A zero bound means "absent" and yields an
// empty slice. Report ranges span weeks to a few months, so the slice is
// materialized rather than streamed.
func WorkingDaysBetween(start, end time.Time) []time.Time {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	days := []time.Time{}
	for d := DateOnly(start); !d.After(DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

// MinutesOfDay returns t's time of day expressed as minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
