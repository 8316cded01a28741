package schema

import (
	"math"
	"time"
)

// daysPerWeek is the bucketing width for weekly counts.
const daysPerWeek = 7

// CourseWindow is the fixed calendar span over which activity is analyzed.
// It is immutable for an analysis run and partitions into consecutive
// 7-day weeks (the last week may be shorter) and three equal-length thirds.
type CourseWindow struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// TotalDays returns the course length in fractional days.
func (w CourseWindow) TotalDays() float64 {
	return w.End.Sub(w.Start).Hours() / 24
}

// WeekCount returns the number of course weeks, rounding up so a partial
// final week still counts as one week. A window always spans at least one week.
func (w CourseWindow) WeekCount() int {
	weeks := int(math.Ceil(w.TotalDays() / daysPerWeek))
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// WeekIndex buckets a timestamp into a week index, clamped to the valid
// range so boundary timestamps (exactly course end) land in the last week.
func (w CourseWindow) WeekIndex(t time.Time) int {
	days := t.Sub(w.Start).Hours() / 24
	idx := int(math.Floor(days / daysPerWeek))
	if idx < 0 {
		idx = 0
	}
	if last := w.WeekCount() - 1; idx > last {
		idx = last
	}
	return idx
}

// ThirdIndex returns which of the three equal-length course thirds a
// timestamp falls into (0, 1 or 2).
func (w CourseWindow) ThirdIndex(t time.Time) int {
	total := w.TotalDays()
	if total <= 0 {
		return 0
	}
	days := t.Sub(w.Start).Hours() / 24
	idx := int(math.Floor(days / (total / 3)))
	if idx < 0 {
		idx = 0
	}
	if idx > 2 {
		idx = 2
	}
	return idx
}

// Contains reports whether a timestamp falls within the window, inclusive
// on both ends.
func (w CourseWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Valid reports whether the window spans a positive duration.
func (w CourseWindow) Valid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && w.End.After(w.Start)
}
