package dateutil

import "time"

// Resolution names the coarsest time component that Truncate preserves.
type Resolution int

const (
	ResolutionYear Resolution = iota + 1
	ResolutionMonth
	ResolutionDay
	ResolutionHour
	ResolutionMinute
	ResolutionSecond
	ResolutionMicrosecond
)

var resolutionNames = map[Resolution]string{
	ResolutionYear:        "year",
	ResolutionMonth:       "month",
	ResolutionDay:         "day",
	ResolutionHour:        "hour",
	ResolutionMinute:      "minute",
	ResolutionSecond:      "second",
	ResolutionMicrosecond: "microsecond",
}

func (r Resolution) String() string {
	if name, ok := resolutionNames[r]; ok {
		return name
	}
	return "unknown"
}

// Truncate flattens every time component finer than the given resolution,
// keeping the location. Truncating 2000-01-02 03:04:05.006 to ResolutionDay
// yields 2000-01-02 00:00:00. Returns ErrInvalidResolution for values
// outside the defined set.
func Truncate(t time.Time, res Resolution) (time.Time, error) {
	year, month, day := t.Date()

	switch res {
	case ResolutionYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location()), nil
	case ResolutionMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location()), nil
	case ResolutionDay:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location()), nil
	case ResolutionHour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, t.Location()), nil
	case ResolutionMinute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location()), nil
	case ResolutionSecond:
		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, t.Location()), nil
	case ResolutionMicrosecond:
		micros := t.Nanosecond() / 1e3 * 1e3
		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), micros, t.Location()), nil
	default:
		return time.Time{}, ErrInvalidResolution
	}
}
