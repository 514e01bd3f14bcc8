package dataset

import (
	"encoding/json"
	"math"
)

// ColumnType pairs a column with its display dtype
type ColumnType struct {
	Column string `json:"column" yaml:"column"`
	Dtype  string `json:"dtype" yaml:"dtype"`
}

// Table is a rectangular block of display cells
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// MissingValue is one row of the missing-value report
type MissingValue struct {
	Column  string  `json:"column" yaml:"column"`
	Missing int     `json:"total_missing" yaml:"total_missing"`
	Ratio   float64 `json:"ratio" yaml:"ratio"` // percent, rounded to 2 decimals
}

// QuantileRow holds one numeric column's values at the table's levels
type QuantileRow struct {
	Column string    `json:"column" yaml:"column"`
	Values []float64 `json:"values" yaml:"values"`
}

// MarshalJSON writes NaN values, from columns without any value, as null
func (r QuantileRow) MarshalJSON() ([]byte, error) {
	values := make([]*float64, len(r.Values))
	for i := range r.Values {
		if !math.IsNaN(r.Values[i]) {
			values[i] = &r.Values[i]
		}
	}
	return json.Marshal(struct {
		Column string     `json:"column"`
		Values []*float64 `json:"values"`
	}{Column: r.Column, Values: values})
}

// QuantileTable is the transposed quantile view: one row per numeric column
type QuantileTable struct {
	Levels []float64     `json:"levels" yaml:"levels"`
	Rows   []QuantileRow `json:"rows" yaml:"rows"`
}

// DescribeRow is the count/mean/std/min/quartiles/max summary of one column.
// Std is the sample standard deviation and is 0 when fewer than two values exist.
type DescribeRow struct {
	Column string  `json:"column" yaml:"column"`
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Median float64 `json:"median" yaml:"median"`
	Q75    float64 `json:"q75" yaml:"q75"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summary is everything the dataset summary printer shows for one table
type Summary struct {
	Name      string         `json:"name" yaml:"name"`
	Rows      int            `json:"rows" yaml:"rows"`
	Cols      int            `json:"cols" yaml:"cols"`
	Types     []ColumnType   `json:"types" yaml:"types"`
	Head      Table          `json:"head" yaml:"head"`
	Missing   []MissingValue `json:"missing" yaml:"missing"`
	Quantiles QuantileTable  `json:"quantiles" yaml:"quantiles"`
	Describe  []DescribeRow  `json:"describe" yaml:"describe"`
}

// GroupMean is the mean of a metric within one group label
type GroupMean struct {
	Group  string  `json:"group" yaml:"group"`
	Metric string  `json:"metric" yaml:"metric"`
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
}
