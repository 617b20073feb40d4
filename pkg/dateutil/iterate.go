package dateutil

import (
	"iter"
	"time"
)

// Day is the default iteration step.
const Day = 24 * time.Hour

// Iterate yields start, start+step, start+2*step, … up to and including
// stop. A zero stop makes the sequence unbounded; the consumer is expected
// to break out. A non-positive step defaults to one day.
func Iterate(start, stop time.Time, step time.Duration) iter.Seq[time.Time] {
	if step <= 0 {
		step = Day
	}
	return func(yield func(time.Time) bool) {
		for cur := start; stop.IsZero() || !cur.After(stop); cur = cur.Add(step) {
			if !yield(cur) {
				return
			}
		}
	}
}

// DatePoint is one day's value in a sparse series.
type DatePoint struct {
	Date  time.Time
	Value float64
}

// IterateValues expands sparse, date-sorted points into a contiguous
// value-per-day series, filling gaps with def. Points earlier than start are
// skipped. With a zero start the series begins at the first point; with a
// zero stop it ends at the last point. Useful for sparklines.
//
//	[{Jan 1, 1}, {Jan 4, 2}] -> [1, 0, 0, 2]
//
// Returns ErrNoDataPoints when no points fall into the range.
func IterateValues(points []DatePoint, start, stop time.Time, def float64) ([]float64, error) {
	idx := 0
	if !start.IsZero() {
		for idx < len(points) && dayBefore(points[idx].Date, start) {
			idx++
		}
	}
	if idx == len(points) {
		return nil, ErrNoDataPoints
	}
	if start.IsZero() {
		start = points[idx].Date
	}

	var out []float64
	for day := range Iterate(start, stop, Day) {
		if idx == len(points) {
			if stop.IsZero() {
				break
			}
			out = append(out, def)
			continue
		}

		if sameDay(day, points[idx].Date) {
			out = append(out, points[idx].Value)
			idx++
		} else {
			out = append(out, def)
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayBefore(a, b time.Time) bool {
	ta, _ := Truncate(a, ResolutionDay)
	tb, _ := Truncate(b, ResolutionDay)
	return ta.Before(tb)
}
