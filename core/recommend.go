package core

import "github.com/coursepulse/coursepulse/schema"

// studentGuidance maps a primary pattern to instructor guidance. Adding a
// new pattern means adding a row here, never touching the classifier.
var studentGuidance = map[schema.PatternKind]string{
	schema.InactivePattern:         "Reach out immediately - a long silent stretch suggests the student dropped or is blocked",
	schema.ProcrastinatingPattern:  "Encourage an earlier start - most progress is happening near the deadline",
	schema.DecliningPattern:        "Check in with the student - activity is falling off and they may need support or clarification",
	schema.StrugglingPattern:       "Review recent work together - many small, irregular commits can indicate confusion or lack of direction",
	schema.ConsistentPattern:       "Healthy work pattern - continue monitoring",
	schema.InsufficientDataPattern: "Not enough commit history to judge - verify the repository is actually in use",
}

// teamGuidance maps an imbalance flag kind to team-level guidance.
var teamGuidance = map[schema.FlagKind]string{
	schema.HighContributorFlag: "Address contribution imbalance - one member is carrying most of the workload",
	schema.LowContributorFlag:  "Check in with the low-contributing member - they may need support or clearer task ownership",
}

// teamBalancedGuidance is returned when no flag was raised.
const teamBalancedGuidance = "Team contributions appear balanced - monitor for changes"

// RecommendationFor returns the guidance text for a classification outcome.
// High-severity outcomes are prefixed so they stand out in flat exports.
func RecommendationFor(primary schema.PatternKind, severity schema.Severity) string {
	text, ok := studentGuidance[primary]
	if !ok {
		text = studentGuidance[schema.InsufficientDataPattern]
	}
	if severity == schema.HighSeverity {
		return "URGENT: " + text
	}
	return text
}

// TeamRecommendationFor returns guidance for a team report. When several
// flag kinds are present the high-contributor guidance wins; the two
// findings are two sides of the same imbalance.
func TeamRecommendationFor(flags []schema.ImbalanceFlag) string {
	if len(flags) == 0 {
		return teamBalancedGuidance
	}
	for _, f := range flags {
		if f.Kind == schema.HighContributorFlag {
			return teamGuidance[schema.HighContributorFlag]
		}
	}
	return teamGuidance[flags[0].Kind]
}
