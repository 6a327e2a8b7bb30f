package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// unknownValue is returned when a duration or timestamp cannot be displayed.
const unknownValue = "Unknown"

// displayLayout is the human-readable timestamp layout, e.g. "Mar-06, 2025 | 06:20 PM".
const displayLayout = "Jan-02, 2006 | 03:04 PM"

// isoLayouts are the ISO-8601 shapes accepted by FormatTimestamp, tried in order.
// A trailing "Z" parses as UTC via the RFC 3339 layouts.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatDuration converts a duration in minutes to a human-readable string
// such as "2h 30m", "2h", or "45m". Zero or negative minutes (the "missing"
// case in vendor data) yield "Unknown".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return unknownValue
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}

// FormatTimestamp converts a vendor time string to a human-readable form.
// The vendor sends times in several shapes:
//   - already formatted for display (contains "|"): returned unchanged
//   - ISO-8601 (contains "T"): parsed (trailing "Z" as UTC) and reformatted
//   - anything else, including unparseable input: returned unchanged
//
// An empty string yields "Unknown". This function is total: malformed input
// degrades to pass-through, it never fails.
func FormatTimestamp(value string) string {
	if value == "" {
		return unknownValue
	}

	if strings.Contains(value, "|") {
		return value
	}

	if !strings.Contains(value, "T") {
		return value
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(displayLayout)
		}
	}

	return value
}
