package hypothesis

import (
	"math"

	"goabtest/domain/core"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// StudentTTest runs the two-sided independent two-sample t-test assuming
// equal population variances (pooled variance, n1+n2-2 degrees of freedom).
func StudentTTest(x, y []float64) (t, p float64, err error) {
	n1, n2 := len(x), len(y)
	if n1 < 2 || n2 < 2 {
		return 0, 0, core.NewInsufficientDataError("t-test", min(n1, n2), 2)
	}

	mean1, var1 := stat.MeanVariance(x, nil)
	mean2, var2 := stat.MeanVariance(y, nil)

	df := float64(n1 + n2 - 2)
	pooled := (float64(n1-1)*var1 + float64(n2-1)*var2) / df
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return 0, 0, core.ErrConstantSample
	}

	t = (mean1 - mean2) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t, clamp01(2 * dist.Survival(math.Abs(t))), nil
}
