package schema

// Default threshold values. Fractions are in [0,1]; day counts are in days.
const (
	DefaultMinCommitsPerWeek        = 2.0
	DefaultInactivityDays           = 14.0
	DefaultProcrastinationThreshold = 0.6
	DefaultLowProgressThreshold     = 0.3
	DefaultDeclineSlopeMin          = 0.35
	DefaultGapCVThreshold           = 1.0
	DefaultSmallCommitMedian        = 20.0
	DefaultWeeklyCVMax              = 0.8
	DefaultMinCommitsAssess         = 3
	DefaultHighShareThreshold       = 0.6
	DefaultLowShareThreshold        = 0.1
	DefaultShareCommitWeight        = 0.5
	DefaultShareLineWeight          = 0.5
)

// Thresholds holds every tunable cutoff of the rule engine. Loaded once
// per analysis run, validated up front and treated as read-only by every
// component afterwards.
type Thresholds struct {
	// MinCommitsPerWeek is the expected healthy cadence. It doubles as the
	// commit-rate floor of the Struggling rule and the default lower edge
	// of the Consistent weekly band.
	MinCommitsPerWeek float64 `json:"min_commits_per_week"`

	// InactivityDays is the gap length, in days, that triggers Inactive.
	InactivityDays float64 `json:"inactivity_days"`

	// ProcrastinationThreshold is the fraction of commits in the final
	// course third that triggers Procrastinating.
	ProcrastinationThreshold float64 `json:"procrastination_threshold"`

	// LowProgressThreshold is the minimum active-week fraction for a
	// student to count as engaged. Declining requires at least this much
	// engagement; Consistent requires its complement.
	LowProgressThreshold float64 `json:"low_progress_threshold"`

	// DeclineSlopeMin is the minimum downward weekly-count slope magnitude
	// (commits/week per week) for Declining.
	DeclineSlopeMin float64 `json:"decline_slope_min"`

	// GapCVThreshold is the coefficient-of-variation cutoff on commit gaps
	// for the Struggling rule.
	GapCVThreshold float64 `json:"gap_cv_threshold"`

	// SmallCommitMedian is the median changed-line count at or below which
	// commits count as small for the Struggling rule.
	SmallCommitMedian float64 `json:"small_commit_median"`

	// WeeklyBandMin and WeeklyBandMax bound the healthy weekly commit rate
	// for the Consistent rule. Zero values fall back to MinCommitsPerWeek
	// and five times it.
	WeeklyBandMin float64 `json:"weekly_band_min"`
	WeeklyBandMax float64 `json:"weekly_band_max"`

	// WeeklyCVMax is the maximum weekly-count coefficient of variation the
	// Consistent rule tolerates.
	WeeklyCVMax float64 `json:"weekly_cv_max"`

	// MinCommitsAssess is the minimum commit count before variance-based
	// rules (Struggling, Consistent) are evaluated at all.
	MinCommitsAssess int `json:"min_commits_assess"`

	// HighShareThreshold and LowShareThreshold bound team contribution
	// shares before a member is flagged.
	HighShareThreshold float64 `json:"high_share_threshold"`
	LowShareThreshold  float64 `json:"low_share_threshold"`

	// ShareCommitWeight and ShareLineWeight blend commit-count share and
	// line-count share into the contribution share. They must sum to 1.
	ShareCommitWeight float64 `json:"share_commit_weight"`
	ShareLineWeight   float64 `json:"share_line_weight"`
}

// DefaultThresholds returns the threshold table with all defaults applied.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinCommitsPerWeek:        DefaultMinCommitsPerWeek,
		InactivityDays:           DefaultInactivityDays,
		ProcrastinationThreshold: DefaultProcrastinationThreshold,
		LowProgressThreshold:     DefaultLowProgressThreshold,
		DeclineSlopeMin:          DefaultDeclineSlopeMin,
		GapCVThreshold:           DefaultGapCVThreshold,
		SmallCommitMedian:        DefaultSmallCommitMedian,
		WeeklyBandMin:            DefaultMinCommitsPerWeek,
		WeeklyBandMax:            5 * DefaultMinCommitsPerWeek,
		WeeklyCVMax:              DefaultWeeklyCVMax,
		MinCommitsAssess:         DefaultMinCommitsAssess,
		HighShareThreshold:       DefaultHighShareThreshold,
		LowShareThreshold:        DefaultLowShareThreshold,
		ShareCommitWeight:        DefaultShareCommitWeight,
		ShareLineWeight:          DefaultShareLineWeight,
	}
}
