package hypothesis

import (
	"math"

	"goabtest/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// exactMaxN bounds the sample sizes for which the exact null distribution is used
const exactMaxN = 8

// MannWhitneyU runs the two-sided Mann-Whitney U test. The returned statistic
// is U for x. Small tie-free samples use the exact distribution of U; all
// other inputs use the normal approximation with tie and continuity correction.
func MannWhitneyU(x, y []float64) (u, p float64, err error) {
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return 0, 0, core.NewInsufficientDataError("Mann-Whitney U", min(n1, n2), 1)
	}

	combined := make([]float64, 0, n1+n2)
	combined = append(combined, x...)
	combined = append(combined, y...)
	ranks, ties := rankAverage(combined)

	r1 := 0.0
	for _, r := range ranks[:n1] {
		r1 += r
	}
	u1 := r1 - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	big := math.Max(u1, u2)

	if (n1 <= exactMaxN || n2 <= exactMaxN) && len(ties) == 0 {
		p = 2 * mannWhitneyExactSF(int(math.Round(big)), n1, n2)
		return u1, clamp01(p), nil
	}

	n := float64(n1 + n2)
	tieTerm := 0.0
	for _, t := range ties {
		ft := float64(t)
		tieTerm += ft*ft*ft - ft
	}
	mu := float64(n1*n2) / 2
	s := math.Sqrt(float64(n1*n2) / 12 * ((n + 1) - tieTerm/(n*(n-1))))
	if s == 0 {
		return u1, 1, nil
	}
	z := (big - mu - 0.5) / s
	return u1, clamp01(2 * distuv.UnitNormal.Survival(z)), nil
}

// mannWhitneyExactSF returns P(U >= u) under the null for sample sizes m, n.
func mannWhitneyExactSF(u, m, n int) float64 {
	counts := mannWhitneyCounts(m, n)
	total := 0.0
	tail := 0.0
	for v, c := range counts {
		total += c
		if v >= u {
			tail += c
		}
	}
	return tail / total
}

// mannWhitneyCounts returns, for every attainable U, the number of
// arrangements of m and n observations producing it. Only the rows of the
// smaller sample are kept, so memory grows with min(m,n)^2 * max(m,n).
func mannWhitneyCounts(m, n int) []float64 {
	if m > n {
		m, n = n, m
	}
	// counts[i][u] holds c(i, j, u) for the current j, where
	// c(i, j, u) = c(i-1, j, u-j) + c(i, j-1, u)
	counts := make([][]float64, m+1)
	for i := range counts {
		counts[i] = make([]float64, 1, i*n+1)
		counts[i][0] = 1
	}
	for j := 1; j <= n; j++ {
		for i := 1; i <= m; i++ {
			row := counts[i]
			for len(row) < i*j+1 {
				row = append(row, 0)
			}
			prev := counts[i-1]
			for u := j; u < len(row) && u-j < len(prev); u++ {
				row[u] += prev[u-j]
			}
			counts[i] = row
		}
	}
	return counts[m]
}
