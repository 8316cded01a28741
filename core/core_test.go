package core

import (
	"time"

	"github.com/coursepulse/coursepulse/schema"
)

// courseWindow returns a 90-day course used across the package tests. It
// spans exactly 13 weekly buckets and three 30-day thirds.
func courseWindow() schema.CourseWindow {
	return schema.CourseWindow{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	}
}

// commitOnDay builds a commit event offset by whole days from course start.
func commitOnDay(author string, day int, lines int, message string) schema.CommitEvent {
	return schema.CommitEvent{
		Author:     author,
		Timestamp:  courseWindow().Start.AddDate(0, 0, day).Add(12 * time.Hour),
		LinesAdded: lines,
		Message:    message,
	}
}

// weeklyCommits builds one commit per course week for an author, a maximally
// steady history.
func weeklyCommits(author string, perWeek int) []schema.CommitEvent {
	window := courseWindow()
	events := make([]schema.CommitEvent, 0, window.WeekCount()*perWeek)
	for week := range window.WeekCount() {
		for n := range perWeek {
			e := commitOnDay(author, week*7+n, 40, "implement parser edge cases for nested blocks")
			if window.Contains(e.Timestamp) {
				events = append(events, e)
			}
		}
	}
	return events
}
