package config

import (
	"os"
	"strconv"
	"strings"

	"goabtest/internal/errors"
)

// Output formats understood by the report renderers
var OutputFormats = []string{"text", "markdown", "html", "json", "yaml"}

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Analysis AnalysisConfig
	Output   OutputConfig
}

// DataConfig locates the workbook and its two sheets
type DataConfig struct {
	ExcelFile    string
	ControlSheet string
	TestSheet    string
}

// AnalysisConfig holds the statistical settings
type AnalysisConfig struct {
	Metric      string
	Alpha       float64
	HeadRows    int
	CapOutliers bool
}

// OutputConfig selects the report format
type OutputConfig struct {
	Format string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:     *loadDataConfig(),
		Analysis: *loadAnalysisConfig(),
		Output:   *loadOutputConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		ExcelFile:    getEnvOrDefault("AB_EXCEL_FILE", "ab_testing.xlsx"),
		ControlSheet: getEnvOrDefault("AB_CONTROL_SHEET", "Control Group"),
		TestSheet:    getEnvOrDefault("AB_TEST_SHEET", "Test Group"),
	}
}

func loadAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Metric:      getEnvOrDefault("AB_METRIC", "Purchase"),
		Alpha:       getEnvFloatOrDefault("AB_ALPHA", 0.05),
		HeadRows:    getEnvIntOrDefault("AB_HEAD_ROWS", 5),
		CapOutliers: getEnvBoolOrDefault("AB_CAP_OUTLIERS", false),
	}
}

func loadOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: strings.ToLower(getEnvOrDefault("AB_OUTPUT_FORMAT", "text")),
	}
}

// Validate checks the settings a run depends on. Flag overrides call it again.
func (c *Config) Validate() error {
	if c.Data.ExcelFile == "" {
		return errors.ConfigInvalid("excel file is required")
	}
	if c.Data.ControlSheet == "" || c.Data.TestSheet == "" {
		return errors.ConfigInvalid("control and test sheet names are required")
	}
	if c.Data.ControlSheet == c.Data.TestSheet {
		return errors.ConfigInvalid("control and test sheets must differ")
	}
	if c.Analysis.Metric == "" {
		return errors.ConfigInvalid("metric is required")
	}
	if !(c.Analysis.Alpha > 0 && c.Analysis.Alpha < 1) {
		return errors.ConfigInvalid("alpha must be in (0, 1)")
	}
	if c.Analysis.HeadRows < 0 {
		return errors.ConfigInvalid("head rows must not be negative")
	}
	if !IsOutputFormat(c.Output.Format) {
		return errors.ConfigInvalid("unknown output format " + strconv.Quote(c.Output.Format))
	}
	return nil
}

// IsOutputFormat reports whether format names a known renderer
func IsOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
