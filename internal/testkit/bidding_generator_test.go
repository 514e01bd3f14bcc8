package testkit

import (
	"fmt"
	"path/filepath"
	"testing"

	"goabtest/adapters/excel"
	"goabtest/domain/abtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGenerate_HitsConfiguredMeans(t *testing.T) {
	ds, err := Generate(DefaultConfig())
	require.NoError(t, err)

	control, err := ds.Control.Column(abtest.ColumnPurchase)
	require.NoError(t, err)
	test, err := ds.Test.Column(abtest.ColumnPurchase)
	require.NoError(t, err)

	assert.Len(t, control.Numbers, 40)
	assert.Len(t, test.Numbers, 40)
	assert.Equal(t, "550.89", fmt.Sprintf("%.2f", stat.Mean(control.Numbers, nil)))
	assert.Equal(t, "582.11", fmt.Sprintf("%.2f", stat.Mean(test.Numbers, nil)))
	assert.InDelta(t, 550.89406, stat.Mean(control.Numbers, nil), 1e-9)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(DefaultConfig())
	require.NoError(t, err)
	b, err := Generate(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, a.Control.Table(), b.Control.Table())
	assert.Equal(t, a.Test.Table(), b.Test.Table())
}

func TestGenerate_MissingClicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissingClicks = 3
	ds, err := Generate(cfg)
	require.NoError(t, err)

	clicks, err := ds.Control.Column(abtest.ColumnClick)
	require.NoError(t, err)
	assert.Equal(t, 3, clicks.MissingCount())
}

func TestGenerate_Validation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 2
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.MissingClicks = cfg.Rows
	_, err = Generate(cfg)
	assert.Error(t, err)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissingClicks = 2
	ds, err := Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ab_testing.xlsx")
	require.NoError(t, WriteXLSX(path, ds, excel.DefaultControlSheet, excel.DefaultTestSheet))

	names, err := excel.NewDataReader(path).SheetNames()
	require.NoError(t, err)
	assert.Equal(t, []string{excel.DefaultControlSheet, excel.DefaultTestSheet}, names)

	data, err := excel.NewDataReader(path).ReadSheet(excel.DefaultTestSheet)
	require.NoError(t, err)
	frame, err := data.ToFrame()
	require.NoError(t, err)

	assert.Equal(t, ds.Test.ColumnNames(), frame.ColumnNames())
	want, _ := ds.Test.Column(abtest.ColumnPurchase)
	got, err := frame.Column(abtest.ColumnPurchase)
	require.NoError(t, err)
	assert.Equal(t, want.Numbers, got.Numbers)

	clicks, err := frame.Column(abtest.ColumnClick)
	require.NoError(t, err)
	assert.Equal(t, 2, clicks.MissingCount())
}
