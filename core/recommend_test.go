package core

import (
	"strings"
	"testing"

	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/assert"
)

// TestRecommendationFor checks guidance lookup and the urgency prefix.
func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		name       string
		primary    schema.PatternKind
		severity   schema.Severity
		wantUrgent bool
	}{
		{
			name:       "inactive is urgent",
			primary:    schema.InactivePattern,
			severity:   schema.HighSeverity,
			wantUrgent: true,
		},
		{
			name:       "procrastinating is not urgent",
			primary:    schema.ProcrastinatingPattern,
			severity:   schema.MediumSeverity,
			wantUrgent: false,
		},
		{
			name:       "consistent is informational",
			primary:    schema.ConsistentPattern,
			severity:   schema.InfoSeverity,
			wantUrgent: false,
		},
		{
			name:       "insufficient data asks for verification",
			primary:    schema.InsufficientDataPattern,
			severity:   schema.InfoSeverity,
			wantUrgent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := RecommendationFor(tt.primary, tt.severity)
			assert.NotEmpty(t, text)
			assert.Equal(t, tt.wantUrgent, strings.HasPrefix(text, "URGENT:"))
		})
	}
}

// TestRecommendationForUnknownPattern falls back to the insufficient-data
// guidance rather than returning empty text.
func TestRecommendationForUnknownPattern(t *testing.T) {
	text := RecommendationFor(schema.PatternKind("mystery"), schema.InfoSeverity)
	assert.Equal(t, studentGuidance[schema.InsufficientDataPattern], text)
}

// TestTeamRecommendationFor checks flag-driven team guidance.
func TestTeamRecommendationFor(t *testing.T) {
	tests := []struct {
		name     string
		flags    []schema.ImbalanceFlag
		expected string
	}{
		{
			name:     "no flags",
			flags:    nil,
			expected: teamBalancedGuidance,
		},
		{
			name: "low contributor only",
			flags: []schema.ImbalanceFlag{
				{Kind: schema.LowContributorFlag, Author: "erin"},
			},
			expected: teamGuidance[schema.LowContributorFlag],
		},
		{
			name: "high contributor wins over low",
			flags: []schema.ImbalanceFlag{
				{Kind: schema.LowContributorFlag, Author: "erin"},
				{Kind: schema.HighContributorFlag, Author: "dave"},
			},
			expected: teamGuidance[schema.HighContributorFlag],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TeamRecommendationFor(tt.flags))
		})
	}
}
