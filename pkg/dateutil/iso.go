package dateutil

import (
	"errors"
	"time"
)

const (
	isoLayout      = "2006-01-02T15:04:05Z"
	isoMicroLayout = "2006-01-02T15:04:05.000000Z"
	// Optional fractional seconds for parsing both layouts.
	isoParseLayout = "2006-01-02T15:04:05.999999999Z"
)

// ParseISO parses an ISO 8601 UTC timestamp such as "2011-02-03T04:05:06Z".
// Fractional seconds are accepted and optional. The result is in UTC.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(isoParseLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidFormat, err)
	}
	return t.UTC(), nil
}

// FormatISO renders t as an ISO 8601 UTC timestamp with second resolution.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// FormatISOMicro renders t as an ISO 8601 UTC timestamp with microsecond
// resolution, e.g. "2011-02-03T04:05:06.000007Z".
func FormatISOMicro(t time.Time) string {
	return t.UTC().Format(isoMicroLayout)
}
