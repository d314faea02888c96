package domain

import (
	"strings"
	"time"
)

// DateLayout is the persisted and displayed calendar date format (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// DateOf drops the time of day from t. The result is midnight UTC of t's
// calendar day in t's own location, so dates compare with Before/After/Equal
// without timezone surprises.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// InRange reports whether d lies within [from, to], both ends inclusive.
func InRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
