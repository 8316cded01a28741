package core

import (
	"context"
	"testing"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/internal/resultstore"
	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testConfig returns a validated config with defaults and an explicit
// course window.
func testConfig() *contract.Config {
	return &contract.Config{
		Window:      courseWindow(),
		ResultLimit: contract.DefaultResultLimit,
		Workers:     4,
		Thresholds:  schema.DefaultThresholds(),
	}
}

// testCourseData builds a small course with one student per pattern family
// and one imbalanced team.
func testCourseData() *schema.CourseData {
	return &schema.CourseData{
		Window: courseWindow(),
		Individuals: []schema.IndividualProject{
			{
				StudentID:  "alice",
				Repository: "alice/project",
				Events:     weeklyCommits("alice", 2),
			},
			{
				StudentID:  "bob",
				Repository: "bob/project",
				Events: []schema.CommitEvent{
					commitOnDay("bob", 1, 30, "initial setup and readme"),
					commitOnDay("bob", 3, 20, "start on the first assignment"),
				},
			},
		},
		Teams: []schema.TeamProject{
			{
				TeamID:     "team-alpha",
				Repository: "team-alpha/project",
				Members:    []string{"carol", "dan"},
				Events: []schema.CommitEvent{
					commitOnDay("carol", 2, 120, "build out the core module"),
					commitOnDay("carol", 9, 110, "add persistence and tests"),
					commitOnDay("carol", 16, 90, "polish the CLI surface"),
				},
			},
		},
		DroppedEvents: 3,
	}
}

// TestAnalyzeIndividualPipeline runs the whole per-student pipeline on a
// steady history.
func TestAnalyzeIndividualPipeline(t *testing.T) {
	project := schema.IndividualProject{
		StudentID:  "alice",
		Repository: "alice/project",
		Events:     weeklyCommits("alice", 2),
	}

	result := AnalyzeIndividual(project, courseWindow(), schema.DefaultThresholds())

	assert.Equal(t, "alice", result.Author)
	assert.Equal(t, "alice/project", result.Repository)
	assert.Equal(t, schema.ConsistentPattern, result.Primary)
	assert.Equal(t, schema.InfoSeverity, result.Severity)
	assert.Equal(t, 26, result.TotalCommits)
	assert.NotEmpty(t, result.Recommendation)
}

// TestAnalyzeCourse runs the full course fan-out and checks the assembled
// report.
func TestAnalyzeCourse(t *testing.T) {
	cfg := testConfig()
	data := testCourseData()

	report, err := AnalyzeCourse(context.Background(), cfg, data, nil)

	require.NoError(t, err)
	require.Len(t, report.Students, 2)
	assert.Equal(t, "alice", report.Students[0].Author)
	assert.Equal(t, "bob", report.Students[1].Author)
	assert.Equal(t, schema.ConsistentPattern, report.Students[0].Primary)
	assert.Equal(t, schema.InactivePattern, report.Students[1].Primary)

	require.Len(t, report.Teams, 1)
	assert.Equal(t, "team-alpha", report.Teams[0].TeamID)

	assert.Equal(t, 2, report.Summary.TotalStudents)
	assert.Equal(t, 1, report.Summary.TotalTeams)
	assert.Equal(t, 1, report.Summary.NeedingAttention)
	assert.Equal(t, 1, report.Summary.SeverityBreakdown[schema.HighSeverity])
	assert.Equal(t, 1, report.Summary.SeverityBreakdown[schema.InfoSeverity])

	require.Len(t, report.Priority, 1)
	assert.Equal(t, "bob", report.Priority[0].Author)

	assert.Equal(t, 3, report.DroppedEvents)
}

// TestAnalyzeCourseIsDeterministic ensures repeated runs over the same
// dataset produce identical reports regardless of worker count.
func TestAnalyzeCourseIsDeterministic(t *testing.T) {
	data := testCourseData()

	cfgOne := testConfig()
	cfgOne.Workers = 1
	first, err := AnalyzeCourse(context.Background(), cfgOne, data, nil)
	require.NoError(t, err)

	cfgEight := testConfig()
	cfgEight.Workers = 8
	second, err := AnalyzeCourse(context.Background(), cfgEight, data, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestAnalyzeCourseWindowFallback ensures the dataset window is used when
// no explicit window was configured, and a missing window fails fast.
func TestAnalyzeCourseWindowFallback(t *testing.T) {
	cfg := testConfig()
	cfg.Window = schema.CourseWindow{}
	data := testCourseData()

	report, err := AnalyzeCourse(context.Background(), cfg, data, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Window, report.Window)

	data.Window = schema.CourseWindow{}
	_, err = AnalyzeCourse(context.Background(), cfg, data, nil)
	assert.Error(t, err)
}

// TestAnalyzeCourseRecordsRun ensures run tracking wraps the analysis when
// a store is configured.
func TestAnalyzeCourseRecordsRun(t *testing.T) {
	cfg := testConfig()
	data := testCourseData()

	mockStore := &resultstore.MockResultStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(7), nil)
	mockStore.On("RecordStudent", int64(7), mock.Anything).Return(nil)
	mockStore.On("RecordTeam", int64(7), mock.Anything).Return(nil)
	mockStore.On("EndRun", int64(7), mock.Anything, 2, 1).Return(nil)

	mockMgr := &resultstore.MockStoreManager{}
	mockMgr.On("GetResultStore").Return(mockStore)

	_, err := AnalyzeCourse(context.Background(), cfg, data, mockMgr)

	require.NoError(t, err)
	mockStore.AssertNumberOfCalls(t, "RecordStudent", 2)
	mockStore.AssertNumberOfCalls(t, "RecordTeam", 1)
	mockStore.AssertExpectations(t)
}

// TestAnalyzeCourseSurvivesRunTrackingFailure ensures a store error never
// fails the analysis itself.
func TestAnalyzeCourseSurvivesRunTrackingFailure(t *testing.T) {
	cfg := testConfig()
	data := testCourseData()

	mockStore := &resultstore.MockResultStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	mockMgr := &resultstore.MockStoreManager{}
	mockMgr.On("GetResultStore").Return(mockStore)

	report, err := AnalyzeCourse(context.Background(), cfg, data, mockMgr)

	require.NoError(t, err)
	assert.Len(t, report.Students, 2)
	mockStore.AssertNotCalled(t, "RecordStudent", mock.Anything, mock.Anything)
}

// TestAnalyzeCourseCancelledContext ensures cancellation surfaces as an
// error instead of a partial report.
func TestAnalyzeCourseCancelledContext(t *testing.T) {
	cfg := testConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeCourse(ctx, cfg, testCourseData(), nil)

	assert.ErrorIs(t, err, context.Canceled)
}

// TestSummarizePatternCounts ensures every fired match contributes to the
// common-pattern tally and inconclusive students are counted explicitly.
func TestSummarizePatternCounts(t *testing.T) {
	students := []schema.ClassificationResult{
		{
			Author:   "alice",
			Primary:  schema.InactivePattern,
			Severity: schema.HighSeverity,
			Matches: []schema.PatternMatch{
				{Kind: schema.InactivePattern, Severity: schema.HighSeverity},
				{Kind: schema.ProcrastinatingPattern, Severity: schema.MediumSeverity},
			},
		},
		{
			Author:   "ghost",
			Primary:  schema.InsufficientDataPattern,
			Severity: schema.InfoSeverity,
		},
	}

	summary := summarize(students, 0)

	counts := map[schema.PatternKind]int{}
	for _, pc := range summary.CommonPatterns {
		counts[pc.Kind] = pc.Count
	}
	assert.Equal(t, 1, counts[schema.InactivePattern])
	assert.Equal(t, 1, counts[schema.ProcrastinatingPattern])
	assert.Equal(t, 1, counts[schema.InsufficientDataPattern])
	assert.Equal(t, 1, summary.NeedingAttention)
}

// TestBeginRunReceivesWindowParams ensures run parameters carry the
// resolved course window, not the raw flag values.
func TestBeginRunReceivesWindowParams(t *testing.T) {
	cfg := testConfig()
	data := testCourseData()

	var gotParams map[string]any
	mockStore := &resultstore.MockResultStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		gotParams = args.Get(1).(map[string]any)
	}).Return(int64(1), nil)
	mockStore.On("RecordStudent", int64(1), mock.Anything).Return(nil)
	mockStore.On("RecordTeam", int64(1), mock.Anything).Return(nil)
	mockStore.On("EndRun", int64(1), mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mockMgr := &resultstore.MockStoreManager{}
	mockMgr.On("GetResultStore").Return(mockStore)

	_, err := AnalyzeCourse(context.Background(), cfg, data, mockMgr)

	require.NoError(t, err)
	require.NotNil(t, gotParams)
	start, err := time.Parse(contract.DateTimeFormat, gotParams["course_start"].(string))
	require.NoError(t, err)
	assert.True(t, start.Equal(courseWindow().Start))
}
