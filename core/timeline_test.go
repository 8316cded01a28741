package core

import (
	"testing"
	"time"

	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTimelineFiltersAndSorts ensures only the author's in-window
// events survive, in timestamp order.
func TestBuildTimelineFiltersAndSorts(t *testing.T) {
	window := courseWindow()
	events := []schema.CommitEvent{
		commitOnDay("alice", 10, 30, "add login form validation"),
		commitOnDay("bob", 5, 10, "other author"),
		commitOnDay("alice", 2, 20, "set up project skeleton"),
		{
			Author:     "alice",
			Timestamp:  window.Start.AddDate(0, 0, -3),
			LinesAdded: 5,
			Message:    "before the course",
		},
		{
			Author:     "alice",
			Timestamp:  window.End.AddDate(0, 0, 2),
			LinesAdded: 5,
			Message:    "after the course",
		},
	}

	tl := BuildTimeline("alice", window, events)

	require.Len(t, tl.Commits, 2)
	assert.Equal(t, "alice", tl.Author)
	assert.Equal(t, "set up project skeleton", tl.Commits[0].Message)
	assert.Equal(t, "add login form validation", tl.Commits[1].Message)
	assert.True(t, tl.Commits[0].Timestamp.Before(tl.Commits[1].Timestamp))
}

// TestBuildTimelineDeduplicates ensures repeated ingestion of the same
// commit collapses to one event.
func TestBuildTimelineDeduplicates(t *testing.T) {
	window := courseWindow()
	e := commitOnDay("alice", 7, 25, "wire up database layer")
	events := []schema.CommitEvent{e, e, e}

	tl := BuildTimeline("alice", window, events)

	assert.Len(t, tl.Commits, 1)
}

// TestBuildTimelineKeepsDistinctMessagesAtSameTimestamp ensures two commits
// at the same instant with different messages both survive.
func TestBuildTimelineKeepsDistinctMessagesAtSameTimestamp(t *testing.T) {
	window := courseWindow()
	ts := window.Start.Add(48 * time.Hour)
	events := []schema.CommitEvent{
		{Author: "alice", Timestamp: ts, LinesAdded: 10, Message: "first half of the merge"},
		{Author: "alice", Timestamp: ts, LinesAdded: 12, Message: "second half of the merge"},
	}

	tl := BuildTimeline("alice", window, events)

	require.Len(t, tl.Commits, 2)
	// Stable sort keeps insertion order for the tied timestamps.
	assert.Equal(t, "first half of the merge", tl.Commits[0].Message)
}

// TestBuildTimelineIncludesWindowBoundaries ensures events at exactly course
// start and course end are kept.
func TestBuildTimelineIncludesWindowBoundaries(t *testing.T) {
	window := courseWindow()
	events := []schema.CommitEvent{
		{Author: "alice", Timestamp: window.Start, LinesAdded: 5, Message: "initial scaffolding commit"},
		{Author: "alice", Timestamp: window.End, LinesAdded: 5, Message: "final submission cleanup"},
	}

	tl := BuildTimeline("alice", window, events)

	assert.Len(t, tl.Commits, 2)
}

// TestBuildTimelineEmptyIsValid ensures an author with no events yields an
// empty timeline, not an error state.
func TestBuildTimelineEmptyIsValid(t *testing.T) {
	tl := BuildTimeline("ghost", courseWindow(), nil)

	assert.Equal(t, "ghost", tl.Author)
	assert.Empty(t, tl.Commits)
}
