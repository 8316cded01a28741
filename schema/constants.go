package schema

// Custom string types for type safety.
type (
	// PatternKind names a behavioral classification produced by the rule engine.
	PatternKind string

	// Severity represents the urgency tier attached to a pattern match.
	Severity string

	// FlagKind names a team-level imbalance finding.
	FlagKind string

	// EvidenceKey represents keys used in pattern match evidence maps.
	EvidenceKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for result storage.
	StoreBackend string
)

// All behavioral patterns supported.
const (
	ConsistentPattern       PatternKind = "consistent"
	InactivePattern         PatternKind = "inactive"
	ProcrastinatingPattern  PatternKind = "procrastinating"
	DecliningPattern        PatternKind = "declining"
	StrugglingPattern       PatternKind = "struggling"
	InsufficientDataPattern PatternKind = "insufficient_data"
)

// All severity tiers supported.
const (
	InfoSeverity   Severity = "info"
	MediumSeverity Severity = "medium"
	HighSeverity   Severity = "high"
)

// All team imbalance flags supported.
const (
	HighContributorFlag FlagKind = "high_contributor"
	LowContributorFlag  FlagKind = "low_contributor"
)

// Evidence keys used by the classification rules.
const (
	EvidenceMaxGapDays     EvidenceKey = "max_gap_days"
	EvidenceThirdFraction  EvidenceKey = "third3_fraction"
	EvidenceTrendSlope     EvidenceKey = "trend_slope"
	EvidenceActiveWeeks    EvidenceKey = "active_week_fraction"
	EvidenceGapCV          EvidenceKey = "gap_cv"
	EvidenceMedianSize     EvidenceKey = "median_size"
	EvidenceWeeklyMean     EvidenceKey = "weekly_mean"
	EvidenceWeeklyCV       EvidenceKey = "weekly_cv"
	EvidenceTotalCommits   EvidenceKey = "total_commits"
	EvidenceMessageQuality EvidenceKey = "message_quality"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// PatternPriority resolves the primary pattern when multiple rules fire.
// Lower value wins. The order tracks actionability: a silent student beats
// every other signal, and Consistent only ever wins alone.
var PatternPriority = map[PatternKind]int{
	InactivePattern:        0,
	ProcrastinatingPattern: 1,
	DecliningPattern:       2,
	StrugglingPattern:      3,
	ConsistentPattern:      4,
}

// SeverityRank orders severities for summaries and intervention ranking.
var SeverityRank = map[Severity]int{
	HighSeverity:   3,
	MediumSeverity: 2,
	InfoSeverity:   1,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
