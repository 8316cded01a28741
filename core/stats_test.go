package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMean tests the arithmetic mean calculation.
func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0.0,
		},
		{
			name:     "single value",
			values:   []float64{4},
			expected: 4.0,
		},
		{
			name:     "several values",
			values:   []float64{1, 2, 3, 4},
			expected: 2.5,
		},
		{
			name:     "all zeros",
			values:   []float64{0, 0, 0},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mean(tt.values), 0.001)
		})
	}
}

// TestMedian tests the median for odd, even and degenerate inputs.
func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0.0,
		},
		{
			name:     "odd length",
			values:   []float64{5, 1, 3},
			expected: 3.0,
		},
		{
			name:     "even length",
			values:   []float64{4, 1, 3, 2},
			expected: 2.5,
		},
		{
			name:     "single value",
			values:   []float64{7},
			expected: 7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, median(tt.values), 0.001)
		})
	}
}

// TestMedianDoesNotMutateInput ensures median sorts a copy, not the caller's slice.
func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_ = median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

// TestStddev tests the sample standard deviation.
func TestStddev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0.0,
		},
		{
			name:     "single value",
			values:   []float64{5},
			expected: 0.0,
		},
		{
			name:     "identical values",
			values:   []float64{2, 2, 2, 2},
			expected: 0.0,
		},
		{
			name:     "known spread",
			values:   []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected: 2.138,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, stddev(tt.values), 0.001)
		})
	}
}

// TestCoefficientOfVariation tests stddev/mean with the zero-mean guard.
func TestCoefficientOfVariation(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "zero mean",
			values:   []float64{0, 0, 0},
			expected: 0.0,
		},
		{
			name:     "uniform values",
			values:   []float64{3, 3, 3},
			expected: 0.0,
		},
		{
			name:     "moderate variation",
			values:   []float64{1, 2, 3},
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, coefficientOfVariation(tt.values), 0.001)
		})
	}
}

// TestOlsSlope tests the least-squares trend slope over weekly counts.
func TestOlsSlope(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0.0,
		},
		{
			name:     "single point",
			values:   []float64{5},
			expected: 0.0,
		},
		{
			name:     "flat line",
			values:   []float64{2, 2, 2, 2},
			expected: 0.0,
		},
		{
			name:     "rising line",
			values:   []float64{1, 2, 3, 4},
			expected: 1.0,
		},
		{
			name:     "falling line",
			values:   []float64{8, 6, 4, 2},
			expected: -2.0,
		},
		{
			name:     "noisy decline",
			values:   []float64{5, 4, 5, 2, 1, 0},
			expected: -1.057,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, olsSlope(tt.values), 0.001)
		})
	}
}
