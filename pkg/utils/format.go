package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// timestampLayouts are the layouts the extractor is known to emit for
// local departure and arrival times.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// FormatFlightNumber strips all non-digit characters from a flight number
// and removes a single leading zero if present. A nil number formats to "".
func FormatFlightNumber(flightNumber *string) string {
	if flightNumber == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range *flightNumber {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return digits[1:]
	}
	return digits
}

// ParseToUTC parses a local timestamp string and normalises it to UTC.
func ParseToUTC(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// ParseToUTCPtr parses an optional local timestamp; nil stays nil.
func ParseToUTCPtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseToUTC(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
