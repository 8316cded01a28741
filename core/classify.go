package core

import (
	"fmt"

	"github.com/coursepulse/coursepulse/schema"
)

// rule is one independent predicate→match mapping. Rules never see each
// other's results; the exception is Consistent, which by definition only
// holds when no concern fired, so Classify passes that in explicitly.
type rule struct {
	kind      schema.PatternKind
	severity  schema.Severity
	predicate func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string)
}

// concernRules are evaluated unconditionally, in priority order.
var concernRules = []rule{
	{
		kind:     schema.InactivePattern,
		severity: schema.HighSeverity,
		predicate: func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string) {
			if fv.MaxGapDays < t.InactivityDays {
				return false, nil, ""
			}
			evidence := map[schema.EvidenceKey]float64{
				schema.EvidenceMaxGapDays:   fv.MaxGapDays,
				schema.EvidenceTotalCommits: float64(fv.TotalCommits),
			}
			return true, evidence, fmt.Sprintf("longest silent stretch is %.0f days", fv.MaxGapDays)
		},
	},
	{
		kind:     schema.ProcrastinatingPattern,
		severity: schema.MediumSeverity,
		predicate: func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string) {
			if fv.TotalCommits == 0 || fv.ThirdFractions[2] < t.ProcrastinationThreshold {
				return false, nil, ""
			}
			evidence := map[schema.EvidenceKey]float64{
				schema.EvidenceThirdFraction: fv.ThirdFractions[2],
				schema.EvidenceTotalCommits:  float64(fv.TotalCommits),
			}
			return true, evidence, fmt.Sprintf("%.0f%% of commits land in the final third of the course", fv.ThirdFractions[2]*100)
		},
	},
	{
		kind:     schema.DecliningPattern,
		severity: schema.MediumSeverity,
		predicate: func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string) {
			// The engagement floor separates "declining" from "never started".
			if fv.TrendSlope >= 0 || -fv.TrendSlope < t.DeclineSlopeMin || fv.ActiveWeekFraction < t.LowProgressThreshold {
				return false, nil, ""
			}
			evidence := map[schema.EvidenceKey]float64{
				schema.EvidenceTrendSlope:  fv.TrendSlope,
				schema.EvidenceActiveWeeks: fv.ActiveWeekFraction,
			}
			return true, evidence, fmt.Sprintf("weekly activity is trending down by %.2f commits/week", -fv.TrendSlope)
		},
	},
	{
		kind:     schema.StrugglingPattern,
		severity: schema.MediumSeverity,
		predicate: func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string) {
			if fv.TotalCommits < t.MinCommitsAssess {
				return false, nil, ""
			}
			weeklyMean := float64(fv.TotalCommits) / float64(len(fv.WeeklyCounts))
			if weeklyMean < t.MinCommitsPerWeek || fv.MedianSize > t.SmallCommitMedian || fv.GapCV < t.GapCVThreshold {
				return false, nil, ""
			}
			evidence := map[schema.EvidenceKey]float64{
				schema.EvidenceWeeklyMean: weeklyMean,
				schema.EvidenceMedianSize: fv.MedianSize,
				schema.EvidenceGapCV:      fv.GapCV,
			}
			return true, evidence, fmt.Sprintf("many small commits (median %.0f lines) at irregular intervals", fv.MedianSize)
		},
	},
}

// consistentRule fires only when no concern rule did.
var consistentRule = rule{
	kind:     schema.ConsistentPattern,
	severity: schema.InfoSeverity,
	predicate: func(fv schema.FeatureVector, t schema.Thresholds) (bool, map[schema.EvidenceKey]float64, string) {
		if fv.TotalCommits < t.MinCommitsAssess {
			return false, nil, ""
		}
		if fv.ActiveWeekFraction < 1-t.LowProgressThreshold {
			return false, nil, ""
		}
		weekly := make([]float64, len(fv.WeeklyCounts))
		for i, c := range fv.WeeklyCounts {
			weekly[i] = float64(c)
		}
		weeklyMean := mean(weekly)
		weeklyCV := coefficientOfVariation(weekly)
		if weeklyMean < t.WeeklyBandMin || weeklyMean > t.WeeklyBandMax || weeklyCV > t.WeeklyCVMax {
			return false, nil, ""
		}
		evidence := map[schema.EvidenceKey]float64{
			schema.EvidenceActiveWeeks: fv.ActiveWeekFraction,
			schema.EvidenceWeeklyMean:  weeklyMean,
			schema.EvidenceWeeklyCV:    weeklyCV,
		}
		return true, evidence, fmt.Sprintf("steady cadence of %.1f commits/week across the course", weeklyMean)
	},
}

// Classify evaluates every rule against a feature vector and resolves the
// primary pattern by fixed priority. Multiple rules may fire together; all
// matches are retained for transparency. A feature vector that fires no
// rule yields an explicit InsufficientData outcome rather than defaulting
// to Consistent, so an inconclusive history never reads as an all clear.
// Classification cannot fail: thresholds are validated at configuration
// load, before any vector reaches this function.
func Classify(fv schema.FeatureVector, t schema.Thresholds) (matches []schema.PatternMatch, primary schema.PatternKind, severity schema.Severity) {
	for _, r := range concernRules {
		if ok, evidence, desc := r.predicate(fv, t); ok {
			matches = append(matches, schema.PatternMatch{
				Kind:        r.kind,
				Severity:    r.severity,
				Evidence:    evidence,
				Description: desc,
			})
		}
	}

	if len(matches) == 0 {
		if ok, evidence, desc := consistentRule.predicate(fv, t); ok {
			matches = append(matches, schema.PatternMatch{
				Kind:        consistentRule.kind,
				Severity:    consistentRule.severity,
				Evidence:    evidence,
				Description: desc,
			})
		}
	}

	if len(matches) == 0 {
		return nil, schema.InsufficientDataPattern, schema.InfoSeverity
	}

	primary = matches[0].Kind
	severity = matches[0].Severity
	for _, m := range matches[1:] {
		if schema.PatternPriority[m.Kind] < schema.PatternPriority[primary] {
			primary = m.Kind
			severity = m.Severity
		}
	}
	return matches, primary, severity
}
