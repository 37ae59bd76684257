// Package timeutil parses and formats the timestamp strings Emby reports.
// Emby emits ISO-8601 with seven fractional digits and a trailing "Z"
// (e.g. "2024-01-15T10:30:00.1234567Z"), which is more precision than
// most consumers want; the fraction is truncated to microseconds before
// parsing so equal instants compare equal regardless of source precision.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Sentinel is what Format and Duration return when the input is empty or
// unparsable. Presentation layers render it verbatim.
const Sentinel = "N/A"

const displayLayout = "2006-01-02 15:04:05"

// Parse converts an Emby timestamp string into a time.Time. It fails with
// an error when the string is empty or malformed; callers that want the
// display sentinel instead use Format or Duration.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	normalized := truncateFraction(s)
	if t, err := time.Parse(time.RFC3339, normalized); err == nil {
		return t, nil
	}
	// Some fields arrive without a zone designator; treat those as UTC.
	t, err := time.Parse("2006-01-02T15:04:05.999999", normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Format renders a timestamp for display. Empty or malformed input yields
// the sentinel; parse failures never propagate.
func Format(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Sentinel
	}
	return t.Format(displayLayout)
}

// Duration renders the elapsed time between two raw timestamp strings.
// Under a minute it reads "42s", under an hour "12m 5s", above that
// "2h 7m" with minutes within the hour. Either bound missing or
// unparsable yields the sentinel. A negative span (end before start) is
// not corrected; the integer math stays well-defined and the sign shows
// through.
func Duration(start, end string) string {
	st, err := Parse(start)
	if err != nil {
		return Sentinel
	}
	et, err := Parse(end)
	if err != nil {
		return Sentinel
	}

	seconds := int64(et.Sub(st) / time.Second)
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	}
}

// truncateFraction cuts fractional seconds down to six digits. Truncation,
// not rounding: a rounded seventh digit could shift the instant across a
// microsecond boundary and break equality with the six-digit form.
func truncateFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := dot + 1
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	frac := s[dot+1 : end]
	if len(frac) <= 6 {
		return s
	}
	return s[:dot+1] + frac[:6] + s[end:]
}
