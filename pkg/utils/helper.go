package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseTimeRFC3339 parses an ISO-8601 / RFC3339 timestamp, falling back to
// the datetime-local format browsers submit ("2006-01-02T15:04").
func ParseTimeRFC3339(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", value)
}

// ParseClock parses a "15:04" time-of-day value.
func ParseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}

// Slugify turns a display name into a URL slug: lowercase, spaces to
// hyphens, everything outside [a-z0-9-] dropped.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(strings.Join(strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' }), "-"), "-")
}
