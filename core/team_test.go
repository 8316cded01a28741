package core

import (
	"testing"

	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeTeamShares ensures blended shares are computed per member and
// sum to one for an active team.
func TestAnalyzeTeamShares(t *testing.T) {
	window := courseWindow()
	project := schema.TeamProject{
		TeamID:     "team-alpha",
		Repository: "team-alpha/project",
		Members:    []string{"dave", "erin"},
		Events: []schema.CommitEvent{
			commitOnDay("dave", 2, 80, "set up the service skeleton"),
			commitOnDay("dave", 10, 60, "implement the ingestion endpoint"),
			commitOnDay("dave", 20, 60, "add integration test harness"),
			commitOnDay("erin", 15, 40, "write the configuration loader"),
		},
	}

	report := AnalyzeTeam(project, window, schema.DefaultThresholds())

	require.Len(t, report.Members, 2)
	assert.Equal(t, 4, report.TotalCommits)
	assert.Equal(t, 240, report.TotalLines)

	// Members come back sorted by author id.
	dave, erin := report.Members[0], report.Members[1]
	assert.Equal(t, "dave", dave.Author)
	assert.Equal(t, "erin", erin.Author)

	assert.InDelta(t, 0.75, dave.CommitShare, 0.001)
	assert.InDelta(t, 200.0/240.0, dave.LineShare, 0.001)
	assert.InDelta(t, 1.0, dave.Share+erin.Share, 0.001)
}

// TestAnalyzeTeamTwoMemberShareSymmetry ensures two members with swapped
// activity receive mirrored shares.
func TestAnalyzeTeamTwoMemberShareSymmetry(t *testing.T) {
	window := courseWindow()
	thresholds := schema.DefaultThresholds()
	events := []schema.CommitEvent{
		commitOnDay("a", 1, 100, "bulk of the work"),
		commitOnDay("b", 2, 25, "small follow-up change"),
	}
	swapped := []schema.CommitEvent{
		commitOnDay("b", 1, 100, "bulk of the work"),
		commitOnDay("a", 2, 25, "small follow-up change"),
	}

	first := AnalyzeTeam(schema.TeamProject{TeamID: "t", Members: []string{"a", "b"}, Events: events}, window, thresholds)
	second := AnalyzeTeam(schema.TeamProject{TeamID: "t", Members: []string{"a", "b"}, Events: swapped}, window, thresholds)

	assert.InDelta(t, first.Members[0].Share, second.Members[1].Share, 0.001)
	assert.InDelta(t, first.Members[1].Share, second.Members[0].Share, 0.001)
}

// TestAnalyzeTeamImbalanceFlags ensures dominant and absent members are
// flagged with the right kinds and severities.
func TestAnalyzeTeamImbalanceFlags(t *testing.T) {
	window := courseWindow()
	project := schema.TeamProject{
		TeamID:  "team-beta",
		Members: []string{"dave", "erin"},
		Events: []schema.CommitEvent{
			commitOnDay("dave", 1, 100, "first feature milestone"),
			commitOnDay("dave", 8, 100, "second feature milestone"),
			commitOnDay("dave", 15, 100, "third feature milestone"),
			commitOnDay("dave", 22, 100, "fourth feature milestone"),
			commitOnDay("dave", 29, 100, "fifth feature milestone"),
			commitOnDay("dave", 36, 100, "sixth feature milestone"),
			commitOnDay("dave", 43, 100, "seventh feature milestone"),
			commitOnDay("dave", 50, 100, "eighth feature milestone"),
			commitOnDay("dave", 57, 100, "ninth feature milestone"),
			commitOnDay("erin", 20, 5, "fix typo in readme wording"),
		},
	}

	report := AnalyzeTeam(project, window, schema.DefaultThresholds())

	require.Len(t, report.Flags, 2)
	byAuthor := map[string]schema.ImbalanceFlag{}
	for _, f := range report.Flags {
		byAuthor[f.Author] = f
	}

	high := byAuthor["dave"]
	assert.Equal(t, schema.HighContributorFlag, high.Kind)
	assert.Equal(t, schema.HighSeverity, high.Severity)

	low := byAuthor["erin"]
	assert.Equal(t, schema.LowContributorFlag, low.Kind)
	assert.Equal(t, schema.MediumSeverity, low.Severity)

	assert.Equal(t, TeamRecommendationFor(report.Flags), report.Recommendation)
}

// TestAnalyzeTeamRosterMemberWithoutCommits ensures a declared member with
// no activity still appears with a zero share, and is flagged low.
func TestAnalyzeTeamRosterMemberWithoutCommits(t *testing.T) {
	window := courseWindow()
	project := schema.TeamProject{
		TeamID:  "team-gamma",
		Members: []string{"alice", "ghost"},
		Events: []schema.CommitEvent{
			commitOnDay("alice", 3, 50, "carry the whole project"),
		},
	}

	report := AnalyzeTeam(project, window, schema.DefaultThresholds())

	require.Len(t, report.Members, 2)
	ghost := report.Members[1]
	assert.Equal(t, "ghost", ghost.Author)
	assert.Zero(t, ghost.Commits)
	assert.Zero(t, ghost.Share)

	require.Len(t, report.Flags, 2)
}

// TestAnalyzeTeamSingleMemberNeverFlagged ensures a one-person roster is
// not reported as imbalanced.
func TestAnalyzeTeamSingleMemberNeverFlagged(t *testing.T) {
	window := courseWindow()
	project := schema.TeamProject{
		TeamID:  "solo",
		Members: []string{"alice"},
		Events: []schema.CommitEvent{
			commitOnDay("alice", 5, 30, "everything by one person"),
		},
	}

	report := AnalyzeTeam(project, window, schema.DefaultThresholds())

	assert.Empty(t, report.Flags)
	assert.Equal(t, teamBalancedGuidance, report.Recommendation)
}

// TestAnalyzeTeamNoActivity ensures a silent repository produces zero
// shares and no flags.
func TestAnalyzeTeamNoActivity(t *testing.T) {
	window := courseWindow()
	project := schema.TeamProject{
		TeamID:  "team-idle",
		Members: []string{"alice", "bob"},
	}

	report := AnalyzeTeam(project, window, schema.DefaultThresholds())

	require.Len(t, report.Members, 2)
	for _, m := range report.Members {
		assert.Zero(t, m.Share)
	}
	assert.Empty(t, report.Flags)
}
