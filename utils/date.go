package utils

import (
	"time"
)

// FormatLocalISODate renders the local calendar day as YYYY-MM-DD.
// Log keys and calendar-day keys both use this: truncating a UTC
// timestamp instead shifts days for timezones east of UTC.
func FormatLocalISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// LegacyUTCISODate renders the UTC calendar day as YYYY-MM-DD. Only
// kept for reading logs written by revisions that truncated UTC
// timestamps; never used for writing.
func LegacyUTCISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StartOfLocalDay truncates a time to local midnight.
func StartOfLocalDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// WeekdayIndex maps a date to a Monday-first weekday index (0..6).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ParseTimestamp parses an RFC3339 timestamp, returning the zero time
// when the value is empty or malformed.
func ParseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
