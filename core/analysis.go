package core

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
)

// maxCommonPatterns caps the "most common patterns" list in summaries.
const maxCommonPatterns = 5

// AnalyzeIndividual runs the full per-student pipeline: timeline → features
// → classification → recommendation. It is pure and touches no other
// student's data, which is what makes the course-level fan-out safe.
func AnalyzeIndividual(project schema.IndividualProject, window schema.CourseWindow, t schema.Thresholds) schema.ClassificationResult {
	tl := BuildTimeline(project.StudentID, window, project.Events)
	fv := ExtractFeatures(tl)
	matches, primary, severity := Classify(fv, t)

	return schema.ClassificationResult{
		Author:         project.StudentID,
		Repository:     project.Repository,
		TotalCommits:   fv.TotalCommits,
		Matches:        matches,
		Primary:        primary,
		Severity:       severity,
		Recommendation: RecommendationFor(primary, severity),
		Features:       fv,
	}
}

// AnalyzeCourse processes every individual and team project of a dataset.
// Students are fanned out across cfg.Workers goroutines; each pipeline
// instance owns its own read-only thresholds and there is no shared mutable
// state, so no ordering dependency exists between them. Team analysis runs
// afterwards, once all member activity is known. Results are indexed back
// into input order so identical inputs produce identical reports.
func AnalyzeCourse(ctx context.Context, cfg *contract.Config, data *schema.CourseData, mgr contract.StoreManager) (*schema.CourseReport, error) {
	window, err := resolveWindow(cfg, data)
	if err != nil {
		return nil, err
	}

	// --- 0. Begin run tracking (if configured) ---
	var store contract.ResultStore
	var runID int64
	if mgr != nil {
		store = mgr.GetResultStore()
	}
	if store != nil {
		configParams := map[string]any{
			"dataset":      cfg.DatasetPath,
			"course_start": window.Start.Format(contract.DateTimeFormat),
			"course_end":   window.End.Format(contract.DateTimeFormat),
			"workers":      cfg.Workers,
		}
		runID, err = store.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Per-student pipelines across the worker pool ---
	students := make([]schema.ClassificationResult, len(data.Individuals))
	idxCh := make(chan int, len(data.Individuals))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for i := range idxCh {
				students[i] = AnalyzeIndividual(data.Individuals[i], window, cfg.Thresholds)
			}
		})
	}
	for i := range data.Individuals {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// --- 2. Team analysis, after every member summary exists ---
	teams := make([]schema.TeamReport, 0, len(data.Teams))
	for _, project := range data.Teams {
		teams = append(teams, AnalyzeTeam(project, window, cfg.Thresholds))
	}

	report := &schema.CourseReport{
		Window:        window,
		Students:      students,
		Teams:         teams,
		Summary:       summarize(students, len(teams)),
		Priority:      RankInterventions(students, cfg.ResultLimit),
		DroppedEvents: data.DroppedEvents,
	}

	// --- 3. Persist and finalize run tracking ---
	if store != nil && runID > 0 {
		for _, r := range students {
			if err := store.RecordStudent(runID, r); err != nil {
				contract.LogWarn("Failed to record student result", err)
				break
			}
		}
		for _, t := range teams {
			if err := store.RecordTeam(runID, t); err != nil {
				contract.LogWarn("Failed to record team report", err)
				break
			}
		}
		if err := store.EndRun(runID, time.Now(), len(students), len(teams)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return report, nil
}

// resolveWindow prefers an explicitly configured course window and falls
// back to the one carried by the dataset.
func resolveWindow(cfg *contract.Config, data *schema.CourseData) (schema.CourseWindow, error) {
	window := cfg.Window
	if window.Start.IsZero() {
		window.Start = data.Window.Start
	}
	if window.End.IsZero() {
		window.End = data.Window.End
	}
	if !window.Valid() {
		return schema.CourseWindow{}, errors.New("course window is missing or invalid: provide course-start/course-end or a dataset with course_info")
	}
	return window, nil
}

// summarize aggregates severity and pattern statistics across all students.
func summarize(students []schema.ClassificationResult, teamCount int) schema.CourseSummary {
	summary := schema.CourseSummary{
		TotalStudents:     len(students),
		TotalTeams:        teamCount,
		SeverityBreakdown: make(map[schema.Severity]int),
	}

	patternCounts := make(map[schema.PatternKind]int)
	for _, r := range students {
		summary.SeverityBreakdown[r.Severity]++
		if schema.SeverityRank[r.Severity] >= schema.SeverityRank[schema.MediumSeverity] {
			summary.NeedingAttention++
		}
		for _, m := range r.Matches {
			patternCounts[m.Kind]++
		}
		if r.Primary == schema.InsufficientDataPattern {
			patternCounts[schema.InsufficientDataPattern]++
		}
	}

	common := make([]schema.PatternCount, 0, len(patternCounts))
	for kind, count := range patternCounts {
		common = append(common, schema.PatternCount{Kind: kind, Count: count})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Kind < common[j].Kind
	})
	if len(common) > maxCommonPatterns {
		common = common[:maxCommonPatterns]
	}
	summary.CommonPatterns = common

	return summary
}
