package core

import (
	"sort"

	"github.com/coursepulse/coursepulse/schema"
)

// RankInterventions orders students needing attention by severity tier,
// then match count, then author id, and returns the top 'limit' entries.
// Info-tier results (Consistent, InsufficientData) are not interventions
// and never appear here.
func RankInterventions(results []schema.ClassificationResult, limit int) []schema.PriorityEntry {
	flagged := make([]schema.ClassificationResult, 0, len(results))
	for _, r := range results {
		if schema.SeverityRank[r.Severity] >= schema.SeverityRank[schema.MediumSeverity] {
			flagged = append(flagged, r)
		}
	}

	sort.Slice(flagged, func(i, j int) bool {
		si, sj := schema.SeverityRank[flagged[i].Severity], schema.SeverityRank[flagged[j].Severity]
		if si != sj {
			return si > sj
		}
		if len(flagged[i].Matches) != len(flagged[j].Matches) {
			return len(flagged[i].Matches) > len(flagged[j].Matches)
		}
		return flagged[i].Author < flagged[j].Author
	})

	if len(flagged) > limit {
		flagged = flagged[:limit]
	}

	entries := make([]schema.PriorityEntry, 0, len(flagged))
	for i, r := range flagged {
		entries = append(entries, schema.PriorityEntry{
			Rank:           i + 1,
			Author:         r.Author,
			Repository:     r.Repository,
			Severity:       r.Severity,
			MatchCount:     len(r.Matches),
			PrimaryConcern: r.Primary,
			Recommendation: r.Recommendation,
		})
	}
	return entries
}
