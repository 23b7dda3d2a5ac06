package timeutil

import "time"

// DateLayout is the canonical date format accepted from callers (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the upstream scoreboard query format (YYYYMMDD).
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompactDate formats a time as YYYYMMDD in its current location,
// matching what the scoreboard API expects in its dates parameter.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}
