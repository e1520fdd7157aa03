// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles pubDate formats found in RSS/Atom feeds and the list display format

package time

import (
	"strings"
	"time"
)

// Common time formats found in RSS/Atom feeds
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
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseFlexibleTime attempts to parse a time string using various formats
func ParseFlexibleTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}
	
	// Clean up the time string
	timeStr = strings.TrimSpace(timeStr)
	
	// Try each format
	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}
	
	return time.Time{}
}

// DisplayLayout renders dates the way the article list shows them, e.g. "Mar 4, 2025"
const DisplayLayout = "Jan 2, 2006"

// FormatDisplay formats t with DisplayLayout in t's own location,
// returning fallback for the zero time.
func FormatDisplay(t time.Time, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.Format(DisplayLayout)
}