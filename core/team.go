package core

import (
	"fmt"
	"sort"

	"github.com/coursepulse/coursepulse/schema"
)

// AnalyzeTeam aggregates per-member contribution summaries for one shared
// repository into blended contribution shares and imbalance flags. It runs
// only after every member's timeline exists; members are the declared team
// roster, so a member with zero commits still appears with a zero share.
// Output ordering is by author id, which keeps reports deterministic.
func AnalyzeTeam(project schema.TeamProject, window schema.CourseWindow, t schema.Thresholds) schema.TeamReport {
	report := schema.TeamReport{
		TeamID:     project.TeamID,
		Repository: project.Repository,
	}

	members := make([]string, len(project.Members))
	copy(members, project.Members)
	sort.Strings(members)

	shares := make([]schema.MemberShare, 0, len(members))
	for _, member := range members {
		tl := BuildTimeline(member, window, project.Events)
		lines := 0
		for _, c := range tl.Commits {
			lines += c.TotalChanges()
		}
		shares = append(shares, schema.MemberShare{
			Author:  member,
			Commits: len(tl.Commits),
			Lines:   lines,
		})
		report.TotalCommits += len(tl.Commits)
		report.TotalLines += lines
	}

	for i := range shares {
		if report.TotalCommits > 0 {
			shares[i].CommitShare = float64(shares[i].Commits) / float64(report.TotalCommits)
		}
		if report.TotalLines > 0 {
			shares[i].LineShare = float64(shares[i].Lines) / float64(report.TotalLines)
		}
		shares[i].Share = t.ShareCommitWeight*shares[i].CommitShare + t.ShareLineWeight*shares[i].LineShare
	}
	report.Members = shares

	// A single-member "team" is never flagged, and a repository with no
	// activity at all has no shares worth flagging.
	if len(members) >= 2 && (report.TotalCommits > 0 || report.TotalLines > 0) {
		for _, s := range shares {
			switch {
			case s.Share >= t.HighShareThreshold:
				report.Flags = append(report.Flags, schema.ImbalanceFlag{
					Kind:        schema.HighContributorFlag,
					Author:      s.Author,
					Share:       s.Share,
					Severity:    schema.HighSeverity,
					Description: fmt.Sprintf("%s holds %.0f%% of the team's contribution", s.Author, s.Share*100),
				})
			case s.Share <= t.LowShareThreshold:
				report.Flags = append(report.Flags, schema.ImbalanceFlag{
					Kind:        schema.LowContributorFlag,
					Author:      s.Author,
					Share:       s.Share,
					Severity:    schema.MediumSeverity,
					Description: fmt.Sprintf("%s holds only %.0f%% of the team's contribution", s.Author, s.Share*100),
				})
			}
		}
	}

	report.Recommendation = TeamRecommendationFor(report.Flags)
	return report
}
