package hypothesis

import (
	"math"

	"goabtest/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Levene tests the null hypothesis that all samples have equal variance.
// Deviations are taken from each sample's median (the Brown-Forsythe form),
// which is robust to the skewed metrics found in ad data.
func Levene(samples ...[]float64) (w, p float64, err error) {
	k := len(samples)
	if k < 2 {
		return 0, 0, core.NewInsufficientDataError("Levene (groups)", k, 2)
	}

	deviations := make([][]float64, k)
	groupMeans := make([]float64, k)
	total := 0
	grand := 0.0
	for i, sample := range samples {
		if len(sample) < 2 {
			return 0, 0, core.NewInsufficientDataError("Levene", len(sample), 2)
		}
		median, err := stats.Median(sample)
		if err != nil {
			return 0, 0, err
		}
		z := make([]float64, len(sample))
		for j, v := range sample {
			z[j] = math.Abs(v - median)
		}
		deviations[i] = z
		groupMeans[i] = stat.Mean(z, nil)
		total += len(z)
		grand += groupMeans[i] * float64(len(z))
	}
	grand /= float64(total)

	between := 0.0
	within := 0.0
	for i, z := range deviations {
		d := groupMeans[i] - grand
		between += float64(len(z)) * d * d
		for _, v := range z {
			e := v - groupMeans[i]
			within += e * e
		}
	}
	if within == 0 {
		return 0, 0, core.ErrConstantSample
	}

	df1 := float64(k - 1)
	df2 := float64(total - k)
	w = (df2 * between) / (df1 * within)
	f := distuv.F{D1: df1, D2: df2}
	return w, clamp01(f.Survival(w)), nil
}
