package config

import (
	"testing"

	"goabtest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"AB_EXCEL_FILE", "AB_CONTROL_SHEET", "AB_TEST_SHEET", "AB_METRIC",
		"AB_ALPHA", "AB_HEAD_ROWS", "AB_CAP_OUTLIERS", "AB_OUTPUT_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ab_testing.xlsx", cfg.Data.ExcelFile)
	assert.Equal(t, "Control Group", cfg.Data.ControlSheet)
	assert.Equal(t, "Test Group", cfg.Data.TestSheet)
	assert.Equal(t, "Purchase", cfg.Analysis.Metric)
	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, 5, cfg.Analysis.HeadRows)
	assert.False(t, cfg.Analysis.CapOutliers)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AB_EXCEL_FILE", "/data/bidding.xlsx")
	t.Setenv("AB_METRIC", "Earning")
	t.Setenv("AB_ALPHA", "0.01")
	t.Setenv("AB_HEAD_ROWS", "10")
	t.Setenv("AB_CAP_OUTLIERS", "true")
	t.Setenv("AB_OUTPUT_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/bidding.xlsx", cfg.Data.ExcelFile)
	assert.Equal(t, "Earning", cfg.Analysis.Metric)
	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.Equal(t, 10, cfg.Analysis.HeadRows)
	assert.True(t, cfg.Analysis.CapOutliers)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_UnparsableFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("AB_HEAD_ROWS", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Analysis.HeadRows)
}

func TestLoad_Invalid(t *testing.T) {
	for name, env := range map[string][2]string{
		"alpha too large": {"AB_ALPHA", "1.5"},
		"alpha zero":      {"AB_ALPHA", "0"},
		"format":          {"AB_OUTPUT_FORMAT", "pdf"},
		"head rows":       {"AB_HEAD_ROWS", "-1"},
		"same sheets":     {"AB_TEST_SHEET", "Control Group"},
	} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(env[0], env[1])

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
