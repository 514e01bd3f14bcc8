// Package dataset holds the in-memory table used by the analysis pipeline
// and the summary types computed from it.
package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"goabtest/domain/core"

	"gonum.org/v1/gonum/stat"
)

// ColumnKind distinguishes numeric from text columns
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
)

// Dtype names, reported the way the summary printer shows them
const (
	DtypeInt    = "int64"
	DtypeFloat  = "float64"
	DtypeObject = "object"
)

// Column is a named, typed column. Numeric cells use NaN for missing,
// text cells use the empty string.
type Column struct {
	Name    string
	Kind    ColumnKind
	Numbers []float64
	Strings []string
}

// NewNumericColumn creates a numeric column; the slice is not copied.
func NewNumericColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: KindNumeric, Numbers: values}
}

// NewTextColumn creates a text column; the slice is not copied.
func NewTextColumn(name string, values []string) *Column {
	return &Column{Name: name, Kind: KindText, Strings: values}
}

// Len returns the number of cells
func (c *Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Numbers)
	}
	return len(c.Strings)
}

// IsMissing reports whether cell i is missing
func (c *Column) IsMissing(i int) bool {
	if c.Kind == KindNumeric {
		return math.IsNaN(c.Numbers[i])
	}
	return c.Strings[i] == ""
}

// MissingCount returns the number of missing cells
func (c *Column) MissingCount() int {
	count := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			count++
		}
	}
	return count
}

// Dtype reports int64 for complete integral numeric columns, float64 for
// other numeric columns and object for text.
func (c *Column) Dtype() string {
	if c.Kind == KindText {
		return DtypeObject
	}
	if len(c.Numbers) == 0 {
		return DtypeFloat
	}
	for _, v := range c.Numbers {
		if math.IsNaN(v) || v != math.Trunc(v) || math.IsInf(v, 0) {
			return DtypeFloat
		}
	}
	return DtypeInt
}

// Values returns a copy of the non-missing numeric values in row order
func (c *Column) Values() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Numbers))
	for _, v := range c.Numbers {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Cell formats cell i for display
func (c *Column) Cell(i int) string {
	if c.Kind == KindText {
		if c.Strings[i] == "" {
			return "NaN"
		}
		return c.Strings[i]
	}
	return FormatNumber(c.Numbers[i])
}

// FormatNumber renders a float with up to six decimals and no trailing zeros
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (c *Column) take(idx []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == KindNumeric {
		out.Numbers = make([]float64, len(idx))
		for j, i := range idx {
			out.Numbers[j] = c.Numbers[i]
		}
		return out
	}
	out.Strings = make([]string, len(idx))
	for j, i := range idx {
		out.Strings[j] = c.Strings[i]
	}
	return out
}

func missingColumn(name string, kind ColumnKind, n int) *Column {
	if kind == KindNumeric {
		values := make([]float64, n)
		for i := range values {
			values[i] = math.NaN()
		}
		return NewNumericColumn(name, values)
	}
	return NewTextColumn(name, make([]string, n))
}

// Frame is an ordered set of equal-length columns
type Frame struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// NewFrame builds a frame; all columns must have the same length and unique names.
func NewFrame(columns ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for i, col := range columns {
		if i == 0 {
			f.rows = col.Len()
		} else if col.Len() != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", core.ErrShapeMismatch, col.Name, col.Len(), f.rows)
		}
		if _, dup := f.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		f.index[col.Name] = i
		f.columns = append(f.columns, col)
	}
	return f, nil
}

// Shape returns (rows, columns)
func (f *Frame) Shape() (int, int) {
	return f.rows, len(f.columns)
}

// Len returns the row count
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns the columns in order
func (f *Frame) Columns() []*Column {
	return f.columns
}

// ColumnNames returns the column names in order
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether the frame has a column with that name
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column looks up a column by name
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return f.columns[i], nil
}

// NumericColumns returns the numeric columns in order
func (f *Frame) NumericColumns() []*Column {
	var out []*Column
	for _, col := range f.columns {
		if col.Kind == KindNumeric {
			out = append(out, col)
		}
	}
	return out
}

// Dtypes returns each column's display type
func (f *Frame) Dtypes() []ColumnType {
	out := make([]ColumnType, len(f.columns))
	for i, col := range f.columns {
		out[i] = ColumnType{Column: col.Name, Dtype: col.Dtype()}
	}
	return out
}

// Head returns the first n rows
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.rows {
		n = f.rows
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return f.take(idx)
}

// WithLabel returns a copy of the frame with a constant text column appended,
// or replaced when a column with that name already exists.
func (f *Frame) WithLabel(name, value string) *Frame {
	labels := make([]string, f.rows)
	for i := range labels {
		labels[i] = value
	}
	label := NewTextColumn(name, labels)

	out := &Frame{index: make(map[string]int, len(f.columns)+1), rows: f.rows}
	for _, col := range f.columns {
		if col.Name == name {
			continue
		}
		out.index[col.Name] = len(out.columns)
		out.columns = append(out.columns, col)
	}
	out.index[name] = len(out.columns)
	out.columns = append(out.columns, label)
	return out
}

// Concat stacks frames row-wise. Columns are the union in order of first
// appearance; cells for columns a frame lacks are missing.
func Concat(frames ...*Frame) (*Frame, error) {
	var order []string
	kinds := make(map[string]ColumnKind)
	for _, f := range frames {
		for _, col := range f.columns {
			kind, seen := kinds[col.Name]
			if !seen {
				kinds[col.Name] = col.Kind
				order = append(order, col.Name)
				continue
			}
			if kind != col.Kind {
				return nil, fmt.Errorf("%w: %q is %s and %s", core.ErrKindMismatch, col.Name, kind, col.Kind)
			}
		}
	}

	columns := make([]*Column, len(order))
	for i, name := range order {
		merged := &Column{Name: name, Kind: kinds[name]}
		for _, f := range frames {
			part, err := f.Column(name)
			if err != nil {
				part = missingColumn(name, merged.Kind, f.rows)
			}
			merged.Numbers = append(merged.Numbers, part.Numbers...)
			merged.Strings = append(merged.Strings, part.Strings...)
		}
		columns[i] = merged
	}
	return NewFrame(columns...)
}

// Filter keeps the rows whose text column equals value
func (f *Frame) Filter(column, value string) (*Frame, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	if col.Kind != KindText {
		return nil, fmt.Errorf("%w: filter column %q is not text", core.ErrKindMismatch, column)
	}
	var idx []int
	for i, v := range col.Strings {
		if v == value {
			idx = append(idx, i)
		}
	}
	return f.take(idx), nil
}

// GroupMeans computes the mean of metric per distinct value of groupCol,
// skipping missing metric cells. Groups are sorted by label.
func (f *Frame) GroupMeans(groupCol, metric string) ([]GroupMean, error) {
	groups, err := f.Column(groupCol)
	if err != nil {
		return nil, err
	}
	values, err := f.Column(metric)
	if err != nil {
		return nil, err
	}
	if values.Kind != KindNumeric {
		return nil, fmt.Errorf("%w: metric %q is not numeric", core.ErrKindMismatch, metric)
	}

	byGroup := make(map[string][]float64)
	for i := 0; i < f.rows; i++ {
		if groups.IsMissing(i) || values.IsMissing(i) {
			continue
		}
		label := groups.Cell(i)
		byGroup[label] = append(byGroup[label], values.Numbers[i])
	}

	labels := make([]string, 0, len(byGroup))
	for label := range byGroup {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]GroupMean, 0, len(labels))
	for _, label := range labels {
		xs := byGroup[label]
		out = append(out, GroupMean{Group: label, Metric: metric, Count: len(xs), Mean: stat.Mean(xs, nil)})
	}
	return out, nil
}

// Table flattens the frame into display cells
func (f *Frame) Table() Table {
	t := Table{Columns: f.ColumnNames(), Rows: make([][]string, f.rows)}
	for i := 0; i < f.rows; i++ {
		row := make([]string, len(f.columns))
		for j, col := range f.columns {
			row[j] = col.Cell(i)
		}
		t.Rows[i] = row
	}
	return t
}

func (f *Frame) take(idx []int) *Frame {
	out := &Frame{index: make(map[string]int, len(f.columns)), rows: len(idx)}
	for i, col := range f.columns {
		out.index[col.Name] = i
		out.columns = append(out.columns, col.take(idx))
	}
	return out
}
