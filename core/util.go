package core

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form used everywhere a date crosses a
// store or API boundary. ISO dates compare correctly as plain strings.
const DateLayout = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Today returns the current local calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// DaysAgo returns the local calendar date n days before today.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(DateLayout)
}

// ParseDate parses a DateLayout date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
