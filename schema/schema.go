// Package schema has configs, models and constants for all parts of coursepulse.
package schema

import "time"

// CommitEvent is one recorded code change by an author at a timestamp.
// Events are immutable facts; the engine never inspects code content,
// only the metadata captured here.
type CommitEvent struct {
	Author       string    `json:"author_id"`
	Timestamp    time.Time `json:"timestamp"`
	LinesAdded   int       `json:"lines_added"`
	LinesRemoved int       `json:"lines_removed"`
	Message      string    `json:"message"`
}

// TotalChanges returns the commit size used for distribution metrics.
func (e CommitEvent) TotalChanges() int {
	return e.LinesAdded + e.LinesRemoved
}

// StudentTimeline owns the ordered, deduplicated commit sequence for one
// author within one course window. Built once by the timeline builder and
// read-only afterwards.
type StudentTimeline struct {
	Author  string        `json:"author_id"`
	Window  CourseWindow  `json:"window"`
	Commits []CommitEvent `json:"commits"`
}

// FeatureVector is the derived, immutable numeric summary of a timeline.
// Every classification rule reads from here and nowhere else.
type FeatureVector struct {
	WeeklyCounts       []int      `json:"weekly_counts"`
	TotalCommits       int        `json:"total_commits"`
	Gaps               []float64  `json:"gaps"`
	MaxGapDays         float64    `json:"max_gap_days"`
	MeanSize           float64    `json:"mean_size"`
	MedianSize         float64    `json:"median_size"`
	StddevSize         float64    `json:"stddev_size"`
	ThirdFractions     [3]float64 `json:"third_fractions"`
	ActiveWeekFraction float64    `json:"active_week_fraction"`
	MessageQuality     float64    `json:"message_quality_score"`
	TrendSlope         float64    `json:"trend_slope"`
	GapCV              float64    `json:"gap_cv"`
}

// PatternMatch is a single fired classification rule with the feature
// values that triggered it.
type PatternMatch struct {
	Kind        PatternKind             `json:"pattern_kind"`
	Severity    Severity                `json:"severity"`
	Evidence    map[EvidenceKey]float64 `json:"evidence"`
	Description string                  `json:"description"`
}

// ClassificationResult is the full per-student outcome of one analysis run.
type ClassificationResult struct {
	Author         string         `json:"author_id"`
	Repository     string         `json:"repository"`
	TotalCommits   int            `json:"total_commits"`
	Matches        []PatternMatch `json:"matches"`
	Primary        PatternKind    `json:"primary_pattern"`
	Severity       Severity       `json:"severity"`
	Recommendation string         `json:"recommendation"`
	Features       FeatureVector  `json:"features"`
}

// MemberShare is one team member's contribution summary.
type MemberShare struct {
	Author      string  `json:"author_id"`
	Commits     int     `json:"commits"`
	Lines       int     `json:"lines"`
	CommitShare float64 `json:"commit_share"`
	LineShare   float64 `json:"line_share"`
	Share       float64 `json:"contribution_share"`
}

// ImbalanceFlag marks a member whose blended share crossed a configured bound.
type ImbalanceFlag struct {
	Kind        FlagKind `json:"kind"`
	Author      string   `json:"author_id"`
	Share       float64  `json:"share"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// TeamReport is the contribution analysis for one shared repository.
type TeamReport struct {
	TeamID         string          `json:"team_id"`
	Repository     string          `json:"repository"`
	TotalCommits   int             `json:"total_commits"`
	TotalLines     int             `json:"total_lines"`
	Members        []MemberShare   `json:"members"`
	Flags          []ImbalanceFlag `json:"imbalance_flags"`
	Recommendation string          `json:"recommendation"`
}

// PatternCount pairs a pattern kind with its occurrence count across a course.
type PatternCount struct {
	Kind  PatternKind `json:"pattern_kind"`
	Count int         `json:"count"`
}

// CourseSummary aggregates per-course statistics over all student results.
type CourseSummary struct {
	TotalStudents     int              `json:"total_students"`
	TotalTeams        int              `json:"total_teams"`
	NeedingAttention  int              `json:"students_needing_attention"`
	SeverityBreakdown map[Severity]int `json:"severity_breakdown"`
	CommonPatterns    []PatternCount   `json:"most_common_patterns"`
}

// PriorityEntry is one row of the intervention ranking.
type PriorityEntry struct {
	Rank           int         `json:"rank"`
	Author         string      `json:"author_id"`
	Repository     string      `json:"repository"`
	Severity       Severity    `json:"severity"`
	MatchCount     int         `json:"match_count"`
	PrimaryConcern PatternKind `json:"primary_concern"`
	Recommendation string      `json:"recommendation"`
}

// CourseReport is the complete output of one course analysis run.
// It carries no wall-clock timestamps so identical inputs produce
// identical reports.
type CourseReport struct {
	Window        CourseWindow           `json:"course_window"`
	Students      []ClassificationResult `json:"individual_results"`
	Teams         []TeamReport           `json:"team_reports"`
	Summary       CourseSummary          `json:"summary"`
	Priority      []PriorityEntry        `json:"priority_interventions"`
	DroppedEvents int                    `json:"dropped_events"`
}
