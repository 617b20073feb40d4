package dateutil

import "time"

// Now returns the current time in loc, or in UTC when loc is nil.
func Now(loc *time.Location) time.Time {
	if loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// ToLocal reinterprets the wall-clock reading of t as UTC and returns the
// equivalent instant in loc. Use it for times parsed or stored without zone
// information under the convention that bare times are UTC.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	utc := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return utc.In(loc)
}

// ToUTC reinterprets the wall-clock reading of t as local time in loc and
// returns the equivalent instant in UTC. Inverse of ToLocal.
func ToUTC(t time.Time, loc *time.Location) time.Time {
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return local.UTC()
}
