package core

import (
	"strings"
	"time"

	"github.com/coursepulse/coursepulse/schema"
)

// boilerplateWords are message tokens that carry no information about what
// a commit actually did. They are excluded from the quality heuristic.
var boilerplateWords = map[string]struct{}{
	"fix":     {},
	"fixes":   {},
	"fixed":   {},
	"update":  {},
	"updated": {},
	"change":  {},
	"changes": {},
	"changed": {},
	"wip":     {},
	"stuff":   {},
	"misc":    {},
	"minor":   {},
	"typo":    {},
	"commit":  {},
	"final":   {},
}

// meaningfulTokenTarget is the token count at which a commit message earns
// a full quality score.
const meaningfulTokenTarget = 6.0

// ExtractFeatures derives the fixed feature vector from a timeline. It is a
// pure function of the timeline and its course window: no hidden state, no
// I/O, identical output for identical input.
func ExtractFeatures(tl schema.StudentTimeline) schema.FeatureVector {
	window := tl.Window
	weeks := window.WeekCount()
	totalDays := window.TotalDays()

	fv := schema.FeatureVector{
		WeeklyCounts: make([]int, weeks),
		TotalCommits: len(tl.Commits),
	}

	var thirdCounts [3]int
	sizes := make([]float64, 0, len(tl.Commits))
	for _, c := range tl.Commits {
		fv.WeeklyCounts[window.WeekIndex(c.Timestamp)]++
		thirdCounts[window.ThirdIndex(c.Timestamp)]++
		sizes = append(sizes, float64(c.TotalChanges()))
	}

	// Gaps include the lead-in from course start and the tail to course
	// end, so a single early commit still exposes a long silent stretch.
	if len(tl.Commits) == 0 {
		fv.Gaps = []float64{totalDays}
	} else {
		gaps := make([]float64, 0, len(tl.Commits)+1)
		gaps = append(gaps, daysBetween(window.Start, tl.Commits[0].Timestamp))
		for i := 1; i < len(tl.Commits); i++ {
			gaps = append(gaps, daysBetween(tl.Commits[i-1].Timestamp, tl.Commits[i].Timestamp))
		}
		gaps = append(gaps, daysBetween(tl.Commits[len(tl.Commits)-1].Timestamp, window.End))
		fv.Gaps = gaps
	}
	for _, g := range fv.Gaps {
		if g > fv.MaxGapDays {
			fv.MaxGapDays = g
		}
	}

	fv.MeanSize = mean(sizes)
	fv.MedianSize = median(sizes)
	fv.StddevSize = stddev(sizes)

	if fv.TotalCommits > 0 {
		for i, c := range thirdCounts {
			fv.ThirdFractions[i] = float64(c) / float64(fv.TotalCommits)
		}
	}

	activeWeeks := 0
	weekly := make([]float64, weeks)
	for i, c := range fv.WeeklyCounts {
		weekly[i] = float64(c)
		if c > 0 {
			activeWeeks++
		}
	}
	fv.ActiveWeekFraction = float64(activeWeeks) / float64(weeks)

	fv.MessageQuality = messageQuality(tl.Commits)
	fv.TrendSlope = olsSlope(weekly)
	fv.GapCV = coefficientOfVariation(fv.Gaps)

	return fv
}

// daysBetween returns the fractional day count from a to b.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}

// messageQuality scores commit messages in [0,1] by how many meaningful
// tokens they carry, averaged over the timeline. An empty timeline scores 0.
func messageQuality(commits []schema.CommitEvent) float64 {
	if len(commits) == 0 {
		return 0
	}
	var total float64
	for _, c := range commits {
		meaningful := 0
		for _, token := range strings.Fields(strings.ToLower(c.Message)) {
			token = strings.Trim(token, ".,:;!?()[]{}\"'")
			if len(token) < 3 {
				continue
			}
			if _, boring := boilerplateWords[token]; boring {
				continue
			}
			meaningful++
		}
		score := float64(meaningful) / meaningfulTokenTarget
		if score > 1 {
			score = 1
		}
		total += score
	}
	return total / float64(len(commits))
}
