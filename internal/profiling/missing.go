package profiling

import (
	"math"
	"sort"

	"goabtest/domain/dataset"
)

// MissingValues reports, for each column with at least one missing cell,
// the count and the percentage of rows missing (rounded to two decimals).
// Rows are ordered by ascending count.
func MissingValues(f *dataset.Frame) []dataset.MissingValue {
	n := f.Len()
	report := []dataset.MissingValue{}
	if n == 0 {
		return report
	}
	for _, col := range f.Columns() {
		k := col.MissingCount()
		if k == 0 {
			continue
		}
		report = append(report, dataset.MissingValue{
			Column:  col.Name,
			Missing: k,
			Ratio:   round2(float64(k) / float64(n) * 100),
		})
	}
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Missing < report[j].Missing
	})
	return report
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
