package profiling

import (
	"math"
	"sort"
)

// SummaryLevels are the quantile levels shown by the dataset summary
var SummaryLevels = []float64{0, 0.05, 0.50, 0.95, 0.99, 1}

// Quantile returns the p-quantile of sorted data using linear interpolation
// between the closest ranks (h = (n-1)p). NaN when data is empty.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	p = math.Max(0, math.Min(1, p))
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Quantiles evaluates several levels on unsorted values
func Quantiles(values []float64, levels []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	out := make([]float64, len(levels))
	for i, p := range levels {
		out[i] = Quantile(sorted, p)
	}
	return out
}
