package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// normalScores returns n evenly spaced normal quantiles scaled to mean and sd.
func normalScores(n int, mean, sd float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sd*distuv.UnitNormal.Quantile((float64(i)+0.5)/float64(n))
	}
	return out
}

// logNormalScores is a strongly right-skewed deterministic sample.
func logNormalScores(n int, scale, sigma float64) []float64 {
	out := normalScores(n, 0, sigma)
	for i, z := range out {
		out[i] = scale * math.Exp(z)
	}
	return out
}
