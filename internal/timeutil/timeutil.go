package timeutil

import "time"

// FormatTimestamp renders t as RFC3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp parses an RFC3339 timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
