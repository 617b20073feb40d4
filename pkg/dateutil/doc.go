// Package dateutil provides date truncation, day-wise iteration, ISO 8601
// conversion, fractional Unix timestamps, and wall-clock timezone helpers.
//
// # Truncation
//
// Truncate flattens a time's precision beyond a given resolution:
//
//	t, _ := dateutil.Truncate(ts, dateutil.ResolutionDay)    // midnight
//	t, _ = dateutil.Truncate(ts, dateutil.ResolutionMinute)  // zero seconds
//
// # Iteration
//
// Iterate ranges over times by a fixed step (daily by default), and
// IterateValues turns sparse (date, value) points into a contiguous
// per-day series for charts and sparklines:
//
//	for day := range dateutil.Iterate(start, stop, dateutil.Day) { ... }
//
//	series, _ := dateutil.IterateValues(points, start, stop, 0)
//
// # Timezones
//
// ToLocal and ToUTC translate wall-clock readings between UTC and a
// time.Location for code bases that follow the "store naive UTC"
// convention.
package dateutil
