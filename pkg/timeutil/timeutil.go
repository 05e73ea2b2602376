package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseISO, tried in order after RFC 3339.
// Zoneless layouts are interpreted in the caller's location, not converted.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 timestamp. A value carrying an explicit offset
// (or a trailing Z) keeps its own zone; a zoneless value is tagged with loc.
func ParseISO(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", value)
}

// EnsureZone moves a zone-aware time into loc. Times produced by ParseISO
// from zoneless input are already tagged and come back unchanged.
func EnsureZone(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// StartOfDay returns midnight at the start of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns 23:59:59.999999 at the end of t's day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, loc)
}
