package session

import "math"

// ComputeResults converts raw per-option counts into a percentage per
// option, each rounded to two decimals independently. The vector is not
// normalized to sum to exactly 100; minor drift from rounding is expected.
// An empty poll yields all zeros.
func ComputeResults(counts []int) []float64 {
	total := 0
	for _, count := range counts {
		total += count
	}

	results := make([]float64, len(counts))
	if total == 0 {
		return results
	}
	for i, count := range counts {
		results[i] = math.Round(float64(count)/float64(total)*100*100) / 100
	}
	return results
}
