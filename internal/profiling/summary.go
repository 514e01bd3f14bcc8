package profiling

import (
	"goabtest/domain/dataset"

	"github.com/montanaflynn/stats"
)

// DefaultHeadRows is how many leading rows the summary shows
const DefaultHeadRows = 5

// Summarize collects shape, types, leading rows, missing values, quantiles
// and describe statistics of a frame.
func Summarize(name string, f *dataset.Frame, headRows int) dataset.Summary {
	rows, cols := f.Shape()
	return dataset.Summary{
		Name:      name,
		Rows:      rows,
		Cols:      cols,
		Types:     f.Dtypes(),
		Head:      f.Head(headRows).Table(),
		Missing:   MissingValues(f),
		Quantiles: QuantileTable(f, SummaryLevels),
		Describe:  Describe(f),
	}
}

// QuantileTable evaluates levels on every numeric column, skipping missing cells
func QuantileTable(f *dataset.Frame, levels []float64) dataset.QuantileTable {
	table := dataset.QuantileTable{Levels: levels}
	for _, col := range f.NumericColumns() {
		table.Rows = append(table.Rows, dataset.QuantileRow{
			Column: col.Name,
			Values: Quantiles(col.Values(), levels),
		})
	}
	return table
}

// Describe computes count, mean, sample std, min, quartiles and max of
// every numeric column. Columns without values are reported with count 0.
func Describe(f *dataset.Frame) []dataset.DescribeRow {
	var out []dataset.DescribeRow
	for _, col := range f.NumericColumns() {
		values := col.Values()
		row := dataset.DescribeRow{Column: col.Name, Count: len(values)}
		if len(values) == 0 {
			out = append(out, row)
			continue
		}

		row.Mean, _ = stats.Mean(values)
		row.Min, _ = stats.Min(values)
		row.Max, _ = stats.Max(values)
		if len(values) > 1 {
			row.Std, _ = stats.StandardDeviationSample(values)
		}
		q := Quantiles(values, []float64{0.25, 0.5, 0.75})
		row.Q25, row.Median, row.Q75 = q[0], q[1], q[2]
		out = append(out, row)
	}
	return out
}
