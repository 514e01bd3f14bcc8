// Package hypothesis implements the assumption checks and two-sample tests
// used to compare the bidding groups.
package hypothesis

import (
	"math"
	"sort"

	"goabtest/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	shapiroMinN  = 3
	shapiroSmall = 1e-19
)

// Royston (1995) polynomial coefficients, algorithm AS R94
var (
	swC1 = []float64{0.0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0.0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// ShapiroWilk tests the null hypothesis that sample was drawn from a normal
// distribution. It returns the W statistic and its p-value.
func ShapiroWilk(sample []float64) (w, p float64, err error) {
	n := len(sample)
	if n < shapiroMinN {
		return 0, 0, core.NewInsufficientDataError("Shapiro-Wilk", n, shapiroMinN)
	}

	x := make([]float64, n)
	copy(x, sample)
	sort.Float64s(x)

	rng := x[n-1] - x[0]
	if rng < shapiroSmall {
		return 0, 0, core.ErrConstantSample
	}

	a := shapiroCoefficients(n)

	// Scale by the range so large values don't lose precision in the sums.
	mean := 0.0
	for _, v := range x {
		mean += v / rng
	}
	mean /= float64(n)

	ss := 0.0
	for _, v := range x {
		d := v/rng - mean
		ss += d * d
	}

	num := 0.0
	for i := range a {
		num += a[i] * (x[n-1-i] - x[i]) / rng
	}

	w = num * num / ss
	if w > 1 {
		w = 1
	}
	return w, shapiroPValue(w, n), nil
}

// shapiroCoefficients returns the first n/2 weights a_i, largest first.
// The remaining weights are their negatives mirrored around the middle.
func shapiroCoefficients(n int) []float64 {
	half := n / 2
	a := make([]float64, half)
	if n == 3 {
		a[0] = math.Sqrt(0.5)
		return a
	}

	an := float64(n)
	m := make([]float64, half)
	summ2 := 0.0
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (an + 0.25))
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(an)

	a1 := poly(swC1, rsn) - m[0]/ssumm2
	a[0] = a1

	first := 1
	var fac float64
	if n > 5 {
		first = 2
		a2 := -m[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	for i := first; i < half; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

func shapiroPValue(w float64, n int) float64 {
	if n == 3 {
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return clamp01(p)
	}

	an := float64(n)
	w1 := math.Log(1 - w)
	if n <= 11 {
		gamma := poly(swG, an)
		if w1 >= gamma {
			return shapiroSmall
		}
		y := -math.Log(gamma - w1)
		m := poly(swC3, an)
		s := math.Exp(poly(swC4, an))
		return clamp01(distuv.UnitNormal.Survival((y - m) / s))
	}

	xx := math.Log(an)
	m := poly(swC5, xx)
	s := math.Exp(poly(swC6, xx))
	return clamp01(distuv.UnitNormal.Survival((w1 - m) / s))
}

// poly evaluates c[0] + c[1]x + c[2]x^2 + ...
func poly(c []float64, x float64) float64 {
	result := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) {
		return 1
	}
	return math.Max(0, math.Min(1, p))
}
