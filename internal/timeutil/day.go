// Package timeutil holds the calendar-day helpers shared by the CLI and TUI.
package timeutil

import "time"

const (
	// ClockLayout renders an entry time like "3:04PM"
	ClockLayout = "3:04PM"
	// HeaderLayout renders a day heading like "Mon, Jan 2"
	HeaderLayout = "Mon, Jan 2"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Today returns midnight of the current day in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return StartOfDay(now.In(loc))
}

// SameDay reports whether a and b fall on the same calendar day in a's location
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FormatClock formats an epoch-millisecond timestamp as a wall clock time in loc
func FormatClock(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc).Format(ClockLayout)
}

// FormatHeader formats the day heading shown above the entry list
func FormatHeader(day time.Time) string {
	return day.Format(HeaderLayout)
}
