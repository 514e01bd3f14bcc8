// Package abtest defines the groups, test results and report of a
// two-group bidding comparison.
package abtest

import (
	"fmt"

	"goabtest/domain/core"
	"goabtest/domain/dataset"
)

// Group labels a bidding strategy arm
type Group string

const (
	GroupControl Group = "control" // maximum bidding
	GroupTest    Group = "test"    // average bidding
)

// Groups lists both arms in report order
var Groups = []Group{GroupControl, GroupTest}

// Canonical column names of the bidding workbook
const (
	ColumnImpression = "Impression"
	ColumnClick      = "Click"
	ColumnPurchase   = "Purchase"
	ColumnEarning    = "Earning"
	ColumnGroup      = "Group"
)

// Columns lists the numeric columns in workbook order
var Columns = []string{ColumnImpression, ColumnClick, ColumnPurchase, ColumnEarning}

// DefaultAlpha is the significance threshold
const DefaultAlpha = 0.05

// TestKind identifies a statistical test
type TestKind string

const (
	TestShapiroWilk  TestKind = "shapiro_wilk"
	TestLevene       TestKind = "levene"
	TestStudentT     TestKind = "student_t"
	TestMannWhitneyU TestKind = "mann_whitney_u"
)

// Title returns a display name
func (k TestKind) Title() string {
	switch k {
	case TestShapiroWilk:
		return "Shapiro-Wilk"
	case TestLevene:
		return "Levene"
	case TestStudentT:
		return "Independent two-sample t-test"
	case TestMannWhitneyU:
		return "Mann-Whitney U"
	}
	return string(k)
}

// TestResult is one test invocation judged against alpha
type TestResult struct {
	Kind           TestKind `json:"kind" yaml:"kind"`
	Subject        string   `json:"subject" yaml:"subject"`
	NullHypothesis string   `json:"null_hypothesis" yaml:"null_hypothesis"`
	Statistic      float64  `json:"statistic" yaml:"statistic"`
	PValue         float64  `json:"p_value" yaml:"p_value"`
	Alpha          float64  `json:"alpha" yaml:"alpha"`
	Rejected       bool     `json:"rejected" yaml:"rejected"`
}

// NewTestResult judges p against alpha; H0 is rejected only when p < alpha.
func NewTestResult(kind TestKind, subject, nullHypothesis string, statistic, pValue, alpha float64) TestResult {
	return TestResult{
		Kind:           kind,
		Subject:        subject,
		NullHypothesis: nullHypothesis,
		Statistic:      statistic,
		PValue:         pValue,
		Alpha:          alpha,
		Rejected:       pValue < alpha,
	}
}

// StatLine renders the statistic and p-value
func (r TestResult) StatLine() string {
	return fmt.Sprintf("Test Stat = %.4f, p-value = %.4f", r.Statistic, r.PValue)
}

// Verdict renders the decision for this result's own p-value
func (r TestResult) Verdict() string {
	if r.Rejected {
		return fmt.Sprintf("H0 can be rejected since p-value %.4f is smaller than %g", r.PValue, r.Alpha)
	}
	return fmt.Sprintf("H0 can NOT be rejected since p-value %.4f is not smaller than %g", r.PValue, r.Alpha)
}

// Path records which comparison the assumption checks selected
type Path string

const (
	PathParametric    Path = "parametric"
	PathNonParametric Path = "non_parametric"
)

// Sequence is the outcome of the assumption checks and the final comparison
type Sequence struct {
	Normality   []TestResult `json:"normality" yaml:"normality"`
	Homogeneity TestResult   `json:"homogeneity" yaml:"homogeneity"`
	Path        Path         `json:"path" yaml:"path"`
	Comparison  TestResult   `json:"comparison" yaml:"comparison"`
	// MeanDifference is mean(test) - mean(control) of the target metric
	MeanDifference float64 `json:"mean_difference" yaml:"mean_difference"`
}

// NormalityHolds reports whether no normality test rejected H0
func (s Sequence) NormalityHolds() bool {
	for _, r := range s.Normality {
		if r.Rejected {
			return false
		}
	}
	return true
}

// Conclusion states the business reading of the final comparison
func (s Sequence) Conclusion(metric string) string {
	if s.Comparison.Rejected {
		return fmt.Sprintf("There is a statistically significant difference between the %s averages of the control and test groups.", metric)
	}
	return fmt.Sprintf("There is no statistically significant difference between the %s averages of the control and test groups.", metric)
}

// OutlierAdjustment records a capping pass on the target metric of one group
type OutlierAdjustment struct {
	Group  Group   `json:"group" yaml:"group"`
	Lower  float64 `json:"lower" yaml:"lower"`
	Upper  float64 `json:"upper" yaml:"upper"`
	Capped int     `json:"capped" yaml:"capped"`
}

// Report is the full result of one analysis run
type Report struct {
	RunID       core.RunID          `json:"run_id" yaml:"run_id"`
	GeneratedAt core.Timestamp      `json:"generated_at" yaml:"generated_at"`
	Source      string              `json:"source" yaml:"source"`
	Metric      string              `json:"metric" yaml:"metric"`
	Alpha       float64             `json:"alpha" yaml:"alpha"`
	Summaries   []dataset.Summary   `json:"summaries" yaml:"summaries"`
	Combined    dataset.Table       `json:"combined_head" yaml:"combined_head"`
	GroupMeans  []dataset.GroupMean `json:"group_means" yaml:"group_means"`
	Outliers    []OutlierAdjustment `json:"outliers,omitempty" yaml:"outliers,omitempty"`
	Sequence    Sequence            `json:"sequence" yaml:"sequence"`
}
