package dateutil

import (
	"math"
	"time"
)

// FromTimestamp converts a fractional Unix timestamp to a UTC time.
//
//	FromTimestamp(1234.5) // 1970-01-01 00:20:34.5 UTC
func FromTimestamp(ts float64) time.Time {
	sec := math.Floor(ts)
	nsec := math.Round((ts - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// ToTimestamp converts a time to a fractional Unix timestamp with
// microsecond precision. Timestamps are always UTC regardless of the
// time's location.
func ToTimestamp(t time.Time) float64 {
	micros := t.Nanosecond() / 1e3
	return float64(t.Unix()) + float64(micros)/1e6
}
