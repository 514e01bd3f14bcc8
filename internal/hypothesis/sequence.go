package hypothesis

import (
	"fmt"

	"goabtest/domain/abtest"

	"gonum.org/v1/gonum/stat"
)

const (
	nullNormal       = "the sample is normally distributed"
	nullEqualVar     = "the group variances are equal"
	nullEqualMeans   = "the group means are equal"
	nullEqualDistrib = "the group distributions are equal"
)

// Sequence runs the assumption checks on metric values of both groups and
// then the comparison they select: Student's t-test when both samples look
// normal and variances look equal, Mann-Whitney U otherwise.
func Sequence(control, test []float64, metric string, alpha float64) (abtest.Sequence, error) {
	if alpha <= 0 || alpha >= 1 {
		alpha = abtest.DefaultAlpha
	}

	var seq abtest.Sequence
	for _, g := range []struct {
		group  abtest.Group
		values []float64
	}{{abtest.GroupControl, control}, {abtest.GroupTest, test}} {
		w, p, err := ShapiroWilk(g.values)
		if err != nil {
			return seq, fmt.Errorf("normality check for %s: %w", g.group, err)
		}
		seq.Normality = append(seq.Normality,
			abtest.NewTestResult(abtest.TestShapiroWilk, string(g.group), nullNormal, w, p, alpha))
	}

	lw, lp, err := Levene(control, test)
	if err != nil {
		return seq, fmt.Errorf("variance homogeneity check: %w", err)
	}
	seq.Homogeneity = abtest.NewTestResult(abtest.TestLevene, metric, nullEqualVar, lw, lp, alpha)

	if seq.NormalityHolds() && !seq.Homogeneity.Rejected {
		t, p, err := StudentTTest(control, test)
		if err != nil {
			return seq, fmt.Errorf("t-test: %w", err)
		}
		seq.Path = abtest.PathParametric
		seq.Comparison = abtest.NewTestResult(abtest.TestStudentT, metric, nullEqualMeans, t, p, alpha)
	} else {
		u, p, err := MannWhitneyU(control, test)
		if err != nil {
			return seq, fmt.Errorf("mann-whitney u: %w", err)
		}
		seq.Path = abtest.PathNonParametric
		seq.Comparison = abtest.NewTestResult(abtest.TestMannWhitneyU, metric, nullEqualDistrib, u, p, alpha)
	}

	seq.MeanDifference = stat.Mean(test, nil) - stat.Mean(control, nil)
	return seq, nil
}
