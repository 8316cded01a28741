// Package ingest loads course datasets and shields the engine from
// malformed input. It is the boundary collaborator described by
// contract.EventSource: whatever fetched the commit events (an export job,
// a hosting API scraper), the engine only ever sees the filtered,
// well-typed result produced here.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
)

// Accepted timestamp layouts, tried in order. Dataset generators are sloppy
// about zone suffixes, so bare ISO timestamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// rawChanges is the nested change-stat shape some exporters emit.
type rawChanges struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// rawCommit accepts both the flat record shape and the nested one.
type rawCommit struct {
	AuthorID     string      `json:"author_id"`
	Author       string      `json:"author"`
	Timestamp    string      `json:"timestamp"`
	Message      string      `json:"message"`
	LinesAdded   int         `json:"lines_added"`
	LinesRemoved int         `json:"lines_removed"`
	Changes      *rawChanges `json:"changes"`
}

type rawCourseInfo struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type rawIndividual struct {
	StudentID  string      `json:"student_id"`
	Repository string      `json:"repository"`
	Commits    []rawCommit `json:"commits"`
}

type rawTeam struct {
	TeamID     string      `json:"team_id"`
	Repository string      `json:"repository"`
	Members    []string    `json:"members"`
	Commits    []rawCommit `json:"commits"`
}

type rawDataset struct {
	CourseInfo  rawCourseInfo   `json:"course_info"`
	Individuals []rawIndividual `json:"individual_projects"`
	Teams       []rawTeam       `json:"team_projects"`
}

// Loader reads course datasets from JSON files.
type Loader struct{}

var _ contract.EventSource = &Loader{} // Compile-time check

// NewLoader creates a dataset loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCourse reads and validates a course dataset file. A record missing
// its author or timestamp is dropped and counted, never surfaced as an
// error; an unreadable or syntactically broken file is.
func (l *Loader) LoadCourse(ctx context.Context, path string) (*schema.CourseData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", path, err)
	}

	var dataset rawDataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", path, err)
	}

	data := &schema.CourseData{}

	if dataset.CourseInfo.StartDate != "" {
		if t, err := parseTimestamp(dataset.CourseInfo.StartDate); err == nil {
			data.Window.Start = t
		}
	}
	if dataset.CourseInfo.EndDate != "" {
		if t, err := parseTimestamp(dataset.CourseInfo.EndDate); err == nil {
			data.Window.End = t
		}
	}

	for _, p := range dataset.Individuals {
		events, dropped := convertCommits(p.Commits, p.StudentID)
		data.DroppedEvents += dropped
		data.Individuals = append(data.Individuals, schema.IndividualProject{
			StudentID:  p.StudentID,
			Repository: p.Repository,
			Events:     events,
		})
	}

	for _, p := range dataset.Teams {
		events, dropped := convertCommits(p.Commits, "")
		data.DroppedEvents += dropped
		data.Teams = append(data.Teams, schema.TeamProject{
			TeamID:     p.TeamID,
			Repository: p.Repository,
			Members:    p.Members,
			Events:     events,
		})
	}

	return data, nil
}

// convertCommits turns raw records into well-typed events. fallbackAuthor
// fills records of single-student repositories that omit the author field.
func convertCommits(raw []rawCommit, fallbackAuthor string) (events []schema.CommitEvent, dropped int) {
	events = make([]schema.CommitEvent, 0, len(raw))
	for _, rc := range raw {
		author := rc.AuthorID
		if author == "" {
			author = rc.Author
		}
		if author == "" {
			author = fallbackAuthor
		}
		if author == "" {
			dropped++
			continue
		}

		ts, err := parseTimestamp(rc.Timestamp)
		if err != nil {
			dropped++
			continue
		}

		added, removed := rc.LinesAdded, rc.LinesRemoved
		if rc.Changes != nil {
			added, removed = rc.Changes.Additions, rc.Changes.Deletions
		}
		if added < 0 || removed < 0 {
			dropped++
			continue
		}

		events = append(events, schema.CommitEvent{
			Author:       author,
			Timestamp:    ts,
			LinesAdded:   added,
			LinesRemoved: removed,
			Message:      rc.Message,
		})
	}
	return events, dropped
}

// parseTimestamp tries each accepted layout and normalizes to UTC.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
