package core

import (
	"sort"

	"github.com/coursepulse/coursepulse/schema"
)

// timelineKey identifies a commit for deduplication. Two events with the
// same author, timestamp and message are treated as duplicate ingestion.
type timelineKey struct {
	author   string
	unixNano int64
	message  string
}

// BuildTimeline normalizes a raw event collection for one author into an
// ordered, deduplicated timeline anchored to the course window. Events
// outside the window are filtered out. An empty result is a valid timeline,
// not an error; downstream stages classify it as extreme inactivity.
func BuildTimeline(author string, window schema.CourseWindow, events []schema.CommitEvent) schema.StudentTimeline {
	seen := make(map[timelineKey]struct{}, len(events))
	commits := make([]schema.CommitEvent, 0, len(events))

	for _, e := range events {
		if e.Author != author || !window.Contains(e.Timestamp) {
			continue
		}
		key := timelineKey{author: e.Author, unixNano: e.Timestamp.UnixNano(), message: e.Message}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		commits = append(commits, e)
	}

	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Timestamp.Before(commits[j].Timestamp)
	})

	return schema.StudentTimeline{
		Author:  author,
		Window:  window,
		Commits: commits,
	}
}
