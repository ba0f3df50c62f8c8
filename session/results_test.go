package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeResults(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected []float64
	}{
		{
			name:     "simple majority",
			counts:   []int{3, 1, 0},
			expected: []float64{75, 25, 0},
		},
		{
			name:     "no answers avoids division by zero",
			counts:   []int{0, 0, 0},
			expected: []float64{0, 0, 0},
		},
		{
			name:     "even split",
			counts:   []int{1, 1},
			expected: []float64{50, 50},
		},
		{
			name:     "thirds round independently and do not sum to 100",
			counts:   []int{1, 1, 1},
			expected: []float64{33.33, 33.33, 33.33},
		},
		{
			name:     "two thirds rounds up",
			counts:   []int{2, 1},
			expected: []float64{66.67, 33.33},
		},
		{
			name:     "empty poll",
			counts:   []int{},
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeResults(tt.counts))
		})
	}
}
