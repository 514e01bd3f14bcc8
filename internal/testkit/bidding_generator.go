// Package testkit generates deterministic synthetic bidding workbooks for
// tests and demos.
package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"goabtest/adapters/excel"
	"goabtest/domain/abtest"
	"goabtest/domain/dataset"

	"gonum.org/v1/gonum/stat"
)

// MetricShape is the mean and standard deviation a generated metric follows
type MetricShape struct {
	Mean float64
	Std  float64
}

// GroupShape describes the four metrics of one group
type GroupShape struct {
	Impression MetricShape
	Click      MetricShape
	Purchase   MetricShape
	Earning    MetricShape
}

// Config controls the generator
type Config struct {
	Rows    int
	Seed    int64
	Control GroupShape
	Test    GroupShape
	// MissingClicks blanks this many Click cells in each group
	MissingClicks int
}

// DefaultConfig mirrors the scale of the maximum- vs average-bidding case:
// forty days per group with purchase means 550.89406 and 582.10610.
func DefaultConfig() Config {
	return Config{
		Rows: 40,
		Seed: 42,
		Control: GroupShape{
			Impression: MetricShape{Mean: 101711.44907, Std: 20302.15786},
			Click:      MetricShape{Mean: 5100.65737, Std: 1329.9855},
			Purchase:   MetricShape{Mean: 550.89406, Std: 134.1082},
			Earning:    MetricShape{Mean: 1908.5683, Std: 302.91778},
		},
		Test: GroupShape{
			Impression: MetricShape{Mean: 120512.41176, Std: 18807.44871},
			Click:      MetricShape{Mean: 3967.54976, Std: 923.09507},
			Purchase:   MetricShape{Mean: 582.1061, Std: 161.15251},
			Earning:    MetricShape{Mean: 2514.89073, Std: 282.73085},
		},
	}
}

// Dataset holds one generated frame per group
type Dataset struct {
	Control *dataset.Frame
	Test    *dataset.Frame
}

// Generate draws normal samples per metric and shifts each so its sample
// mean equals the configured mean.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Rows < 3 {
		return nil, fmt.Errorf("rows must be >= 3")
	}
	if cfg.MissingClicks < 0 || cfg.MissingClicks >= cfg.Rows {
		return nil, fmt.Errorf("missing clicks must be in [0, rows)")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	control, err := generateGroup(rng, cfg.Rows, cfg.Control, cfg.MissingClicks)
	if err != nil {
		return nil, err
	}
	test, err := generateGroup(rng, cfg.Rows, cfg.Test, cfg.MissingClicks)
	if err != nil {
		return nil, err
	}
	return &Dataset{Control: control, Test: test}, nil
}

func generateGroup(rng *rand.Rand, rows int, shape GroupShape, missingClicks int) (*dataset.Frame, error) {
	clicks := sample(rng, rows, shape.Click)
	for _, i := range rng.Perm(rows)[:missingClicks] {
		clicks[i] = math.NaN()
	}

	return dataset.NewFrame(
		dataset.NewNumericColumn(abtest.ColumnImpression, sample(rng, rows, shape.Impression)),
		dataset.NewNumericColumn(abtest.ColumnClick, clicks),
		dataset.NewNumericColumn(abtest.ColumnPurchase, sample(rng, rows, shape.Purchase)),
		dataset.NewNumericColumn(abtest.ColumnEarning, sample(rng, rows, shape.Earning)),
	)
}

func sample(rng *rand.Rand, n int, shape MetricShape) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = shape.Mean + shape.Std*rng.NormFloat64()
	}
	shift := shape.Mean - stat.Mean(out, nil)
	for i := range out {
		out[i] += shift
	}
	return out
}

// WriteXLSX writes the dataset as a two-sheet workbook
func WriteXLSX(path string, ds *Dataset, controlSheet, testSheet string) error {
	return excel.WriteWorkbook(path,
		excel.NamedFrame{Sheet: controlSheet, Frame: ds.Control},
		excel.NamedFrame{Sheet: testSheet, Frame: ds.Test},
	)
}
