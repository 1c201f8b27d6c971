// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the timestamp formats returned by the upstream news APIs

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayLayout renders dates the way article cards show them, e.g. "Jan 5, 2024"
const DisplayLayout = "Jan 2, 2006"

// Common time formats found in upstream payloads
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using the known formats
// first and dateparse as a fallback. The zero time means it could not be parsed.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return t
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// FormatDisplay converts an upstream timestamp into DisplayLayout, keeping
// the timestamp's own offset. Unparseable input is returned trimmed so no
// information is lost.
func FormatDisplay(timeStr string) string {
	parsed := ParseFlexibleTime(timeStr)
	if parsed.IsZero() {
		return strings.TrimSpace(timeStr)
	}
	return parsed.Format(DisplayLayout)
}
