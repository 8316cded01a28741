package resultstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a fresh SQLite store in a temp dir and closes it
// when the test finishes.
func newSQLiteStore(t *testing.T) contract.ResultStore {
	t.Helper()
	store, err := NewResultStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// sampleResult returns a classification result for persistence tests.
func sampleResult(author string) schema.ClassificationResult {
	return schema.ClassificationResult{
		Author:       author,
		Repository:   author + "/project",
		TotalCommits: 12,
		Matches: []schema.PatternMatch{
			{
				Kind:        schema.ProcrastinatingPattern,
				Severity:    schema.MediumSeverity,
				Evidence:    map[schema.EvidenceKey]float64{schema.EvidenceThirdFraction: 0.75},
				Description: "75% of commits land in the final third of the course",
			},
		},
		Primary:        schema.ProcrastinatingPattern,
		Severity:       schema.MediumSeverity,
		Recommendation: "Encourage an earlier start - most progress is happening near the deadline",
		Features: schema.FeatureVector{
			TotalCommits:       12,
			MaxGapDays:         9.5,
			ActiveWeekFraction: 0.6,
			ThirdFractions:     [3]float64{0.1, 0.15, 0.75},
		},
	}
}

// sampleTeamReport returns a team report for persistence tests.
func sampleTeamReport(teamID string) schema.TeamReport {
	return schema.TeamReport{
		TeamID:       teamID,
		Repository:   teamID + "/project",
		TotalCommits: 16,
		TotalLines:   1520,
		Members: []schema.MemberShare{
			{Author: "dave", Commits: 15, Lines: 1500, Share: 0.96},
			{Author: "erin", Commits: 1, Lines: 20, Share: 0.04},
		},
		Flags: []schema.ImbalanceFlag{
			{Kind: schema.HighContributorFlag, Author: "dave", Share: 0.96, Severity: schema.HighSeverity},
		},
	}
}

func TestSQLiteRunLifecycle(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), map[string]any{"dataset": "course.json", "workers": 4})
	require.NoError(t, err)
	assert.Positive(t, runID)

	require.NoError(t, store.RecordStudent(runID, sampleResult("alice")))
	require.NoError(t, store.RecordStudent(runID, sampleResult("bob")))
	require.NoError(t, store.RecordTeam(runID, sampleTeamReport("team-alpha")))
	require.NoError(t, store.EndRun(runID, time.Now().UTC(), 2, 1))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 2, runs[0].TotalStudents)
	assert.Equal(t, 1, runs[0].TotalTeams)
	require.NotNil(t, runs[0].EndTime)
	assert.False(t, runs[0].EndTime.Before(runs[0].StartTime))
	assert.Contains(t, runs[0].ConfigParams, "course.json")
}

func TestSQLiteGetAllStudents(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordStudent(runID, sampleResult("carol")))

	students, err := store.GetAllStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)

	s := students[0]
	assert.Equal(t, runID, s.RunID)
	assert.Equal(t, "carol", s.Author)
	assert.Equal(t, "carol/project", s.Repository)
	assert.Equal(t, 12, s.TotalCommits)
	assert.Equal(t, string(schema.ProcrastinatingPattern), s.PrimaryPattern)
	assert.Equal(t, string(schema.MediumSeverity), s.Severity)
	assert.Equal(t, 1, s.MatchCount)
	assert.InDelta(t, 9.5, s.MaxGapDays, 0.001)
	assert.InDelta(t, 0.6, s.ActiveWeeks, 0.001)
	assert.InDelta(t, 0.75, s.ThirdFraction, 0.001)
	assert.Contains(t, s.MatchesJSON, "procrastinating")
	assert.False(t, s.RecordedAt.IsZero())
}

func TestSQLiteGetAllTeams(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordTeam(runID, sampleTeamReport("team-alpha")))

	teams, err := store.GetAllTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)

	tr := teams[0]
	assert.Equal(t, "team-alpha", tr.TeamID)
	assert.Equal(t, 2, tr.MemberCount)
	assert.Equal(t, 16, tr.TotalCommits)
	assert.Equal(t, 1, tr.FlagCount)
	assert.Contains(t, tr.SharesJSON, "dave")
}

func TestSQLiteDuplicateStudentRejected(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)

	require.NoError(t, store.RecordStudent(runID, sampleResult("alice")))
	assert.Error(t, store.RecordStudent(runID, sampleResult("alice")))
}

func TestSQLiteGetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordStudent(runID, sampleResult("alice")))
	require.NoError(t, store.RecordTeam(runID, sampleTeamReport("team-alpha")))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, 1, status.TableSizes[runsTable])
	assert.Equal(t, 1, status.TableSizes[studentsTable])
	assert.Equal(t, 1, status.TableSizes[teamsTable])
}

func TestSQLiteClear(t *testing.T) {
	store := newSQLiteStore(t)

	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordStudent(runID, sampleResult("alice")))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.TotalRuns)
	assert.Zero(t, status.TableSizes[studentsTable])

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := NewResultStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.RecordStudent(1, sampleResult("alice")))
	require.NoError(t, store.RecordTeam(1, sampleTeamReport("team-alpha")))
	require.NoError(t, store.EndRun(1, time.Now(), 1, 1))
	require.NoError(t, store.Clear())

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)

	require.NoError(t, store.Close())
}

func TestNewResultStoreUnsupportedBackend(t *testing.T) {
	_, err := NewResultStore(schema.StoreBackend("redis"), "")
	assert.Error(t, err)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`coursepulse_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"coursepulse_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"coursepulse_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	formatted := formatTime(ts, schema.SQLiteBackend)
	str, ok := formatted.(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, str)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))

	native := formatTime(ts, schema.PostgreSQLBackend)
	assert.Equal(t, ts, native)
}

func TestResultStoreManager(t *testing.T) {
	mgr := &ResultStoreManager{}
	assert.Nil(t, mgr.GetResultStore())

	store := newSQLiteStore(t)
	mgr.SetResultStore(store)
	assert.Equal(t, store, mgr.GetResultStore())
}
