package report

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"goabtest/adapters/excel"
	"goabtest/app"
	"goabtest/domain/abtest"
	"goabtest/domain/core"
	"goabtest/domain/dataset"
	"goabtest/internal"
	"goabtest/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixtureReport() *abtest.Report {
	seq := abtest.Sequence{
		Normality: []abtest.TestResult{
			abtest.NewTestResult(abtest.TestShapiroWilk, "control", "the sample is normally distributed", 0.9773, 0.5891, 0.05),
			abtest.NewTestResult(abtest.TestShapiroWilk, "test", "the sample is normally distributed", 0.9589, 0.1541, 0.05),
		},
		Homogeneity:    abtest.NewTestResult(abtest.TestLevene, "Purchase", "the group variances are equal", 2.6393, 0.1083, 0.05),
		Path:           abtest.PathParametric,
		Comparison:     abtest.NewTestResult(abtest.TestStudentT, "Purchase", "the group means are equal", -0.9416, 0.3493, 0.05),
		MeanDifference: 31.21204,
	}
	return &abtest.Report{
		RunID:       core.RunID("0190a0b2-7c1d-7e3f-8a9b-0c1d2e3f4a5b"),
		GeneratedAt: core.NewTimestamp(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)),
		Source:      "ab_testing.xlsx[Control Group], ab_testing.xlsx[Test Group]",
		Metric:      "Purchase",
		Alpha:       0.05,
		Summaries: []dataset.Summary{{
			Name:  "Control Group",
			Rows:  2,
			Cols:  2,
			Types: []dataset.ColumnType{{Column: "Purchase", Dtype: "float64"}, {Column: "Click", Dtype: "float64"}},
			Head: dataset.Table{
				Columns: []string{"Purchase", "Click"},
				Rows:    [][]string{{"500.5", "NaN"}, {"601.25", "4000"}},
			},
			Missing: []dataset.MissingValue{{Column: "Click", Missing: 1, Ratio: 50}},
			Quantiles: dataset.QuantileTable{
				Levels: []float64{0, 0.5, 1},
				Rows:   []dataset.QuantileRow{{Column: "Purchase", Values: []float64{500.5, 550.875, 601.25}}},
			},
			Describe: []dataset.DescribeRow{{Column: "Purchase", Count: 2, Mean: 550.875, Std: 71.24, Min: 500.5, Q25: 525.6875, Median: 550.875, Q75: 576.0625, Max: 601.25}},
		}},
		Combined: dataset.Table{
			Columns: []string{"Purchase", "Group"},
			Rows:    [][]string{{"500.5", "control"}},
		},
		GroupMeans: []dataset.GroupMean{
			{Group: "control", Metric: "Purchase", Count: 40, Mean: 550.89406},
			{Group: "test", Metric: "Purchase", Count: 40, Mean: 582.10610},
		},
		Sequence: seq,
	}
}

func TestNewRenderer(t *testing.T) {
	for format, want := range map[string]string{
		"text": FormatText, "": FormatText, "MARKDOWN": FormatMarkdown, "md": FormatMarkdown,
		"html": FormatHTML, "json": FormatJSON, "yml": FormatYAML,
	} {
		r, err := NewRenderer(format)
		require.NoError(t, err, format)
		assert.Equal(t, want, r.Format())
	}

	_, err := NewRenderer("pdf")
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, fixtureReport()))
	out := buf.String()

	for _, want := range []string{
		"Control Group",
		"--------------------- Shape ---------------------",
		"(2, 2)",
		"--------------------- Missing Values ---------------------",
		"601.25",
		"550.89",
		"582.11",
		"Shapiro-Wilk (control)",
		"Test Stat = 0.9773, p-value = 0.5891",
		"H0 can NOT be rejected since p-value 0.3493 is not smaller than 0.05",
		"Mean difference (test - control): 31.21",
		"no statistically significant difference",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Levene"), strings.Index(out, "Independent two-sample t-test"))
}

func TestTextRenderer_EmptyMissingAndNoTests(t *testing.T) {
	report := fixtureReport()
	report.Summaries[0].Missing = []dataset.MissingValue{}
	report.Sequence = abtest.Sequence{}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, report))
	assert.Contains(t, buf.String(), "Empty DataFrame")
	assert.NotContains(t, buf.String(), "Hypothesis Tests")
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownRenderer{}).Render(&buf, fixtureReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# A/B Test Report\n"))
	assert.Contains(t, out, "| Column | Total Missing | Ratio |")
	assert.Contains(t, out, "| Click | 1 | 50 |")
	assert.Contains(t, out, "| control | 40 | 550.89 |")
	assert.Contains(t, out, "### Levene (Purchase)")
	assert.Contains(t, out, "- Generated: 2026-10-19T12:00:00Z")
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLRenderer{}).Render(&buf, fixtureReport()))
	out := buf.String()

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<title>A/B Test Report: Purchase</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Independent two-sample t-test (Purchase)")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, fixtureReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Purchase", decoded["metric"])
	assert.Equal(t, "2026-10-19T12:00:00Z", decoded["generated_at"])

	seq := decoded["sequence"].(map[string]interface{})
	assert.Equal(t, "parametric", seq["path"])
	comparison := seq["comparison"].(map[string]interface{})
	assert.Equal(t, "student_t", comparison["kind"])
	assert.Equal(t, false, comparison["rejected"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLRenderer{}).Render(&buf, fixtureReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Purchase", decoded["metric"])
	assert.Equal(t, 0.05, decoded["alpha"])
	assert.Contains(t, buf.String(), "run_id: 0190a0b2-7c1d-7e3f-8a9b-0c1d2e3f4a5b")
	assert.NotContains(t, buf.String(), "outliers:")
}

func TestEndToEnd_GeneratedWorkbook(t *testing.T) {
	ds, err := testkit.Generate(testkit.DefaultConfig())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "ab_testing.xlsx")
	require.NoError(t, testkit.WriteXLSX(path, ds, excel.DefaultControlSheet, excel.DefaultTestSheet))

	source := excel.NewGroupSource(excel.DefaultExcelConfig(path))
	svc := app.NewABTestService(source, app.DefaultSettings(), internal.NewLogger(internal.LogLevelError))
	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "(40, 4)")
	assert.Contains(t, out, "550.89")
	assert.Contains(t, out, "582.11")
	assert.Contains(t, out, "Shapiro-Wilk (control)")
	assert.Contains(t, out, "Shapiro-Wilk (test)")
	assert.Contains(t, out, "Levene (Purchase)")
	assert.Contains(t, out, report.Sequence.Comparison.Kind.Title())
}

func TestJSONRenderer_AllMissingColumn(t *testing.T) {
	report := fixtureReport()
	report.Summaries[0].Quantiles.Rows = append(report.Summaries[0].Quantiles.Rows,
		dataset.QuantileRow{Column: "Click", Values: []float64{math.NaN(), math.NaN(), math.NaN()}})

	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, report))
	assert.Contains(t, buf.String(), `"values":[null,null,null]`)
}
