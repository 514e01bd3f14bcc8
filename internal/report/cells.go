package report

import (
	"fmt"
	"strconv"

	"goabtest/domain/abtest"
	"goabtest/domain/dataset"
)

// Both the console and markdown renderers lay out the same cell grids.

func typeRows(types []dataset.ColumnType) [][]string {
	rows := make([][]string, len(types))
	for i, t := range types {
		rows[i] = []string{t.Column, t.Dtype}
	}
	return rows
}

func missingRows(missing []dataset.MissingValue) [][]string {
	rows := make([][]string, len(missing))
	for i, m := range missing {
		rows[i] = []string{m.Column, strconv.Itoa(m.Missing), dataset.FormatNumber(m.Ratio)}
	}
	return rows
}

func quantileHeaders(q dataset.QuantileTable) []string {
	headers := []string{""}
	for _, level := range q.Levels {
		headers = append(headers, dataset.FormatNumber(level))
	}
	return headers
}

func quantileRows(q dataset.QuantileTable) [][]string {
	rows := make([][]string, len(q.Rows))
	for i, r := range q.Rows {
		row := []string{r.Column}
		for _, v := range r.Values {
			row = append(row, dataset.FormatNumber(v))
		}
		rows[i] = row
	}
	return rows
}

var describeHeaders = []string{"", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func describeRows(describe []dataset.DescribeRow) [][]string {
	rows := make([][]string, len(describe))
	for i, d := range describe {
		rows[i] = []string{
			d.Column,
			strconv.Itoa(d.Count),
			dataset.FormatNumber(d.Mean),
			dataset.FormatNumber(d.Std),
			dataset.FormatNumber(d.Min),
			dataset.FormatNumber(d.Q25),
			dataset.FormatNumber(d.Median),
			dataset.FormatNumber(d.Q75),
			dataset.FormatNumber(d.Max),
		}
	}
	return rows
}

var groupMeanHeaders = []string{"Group", "Count", "Mean"}

func groupMeanRows(means []dataset.GroupMean) [][]string {
	rows := make([][]string, len(means))
	for i, m := range means {
		rows[i] = []string{m.Group, strconv.Itoa(m.Count), fmt.Sprintf("%.2f", m.Mean)}
	}
	return rows
}

var outlierHeaders = []string{"Group", "Lower", "Upper", "Capped"}

func outlierRows(adjustments []abtest.OutlierAdjustment) [][]string {
	rows := make([][]string, len(adjustments))
	for i, a := range adjustments {
		rows[i] = []string{string(a.Group), fmt.Sprintf("%.4f", a.Lower), fmt.Sprintf("%.4f", a.Upper), strconv.Itoa(a.Capped)}
	}
	return rows
}

// testHeading names a test and what it was run on
func testHeading(r abtest.TestResult) string {
	return fmt.Sprintf("%s (%s)", r.Kind.Title(), r.Subject)
}

// orderedResults lists every result of a sequence in run order
func orderedResults(seq abtest.Sequence) []abtest.TestResult {
	out := append([]abtest.TestResult{}, seq.Normality...)
	return append(out, seq.Homogeneity, seq.Comparison)
}

func hasSequence(r *abtest.Report) bool {
	return r.Sequence.Path != ""
}
