package report

import (
	"fmt"
	"io"
	"strings"

	"goabtest/domain/abtest"
	"goabtest/domain/dataset"
)

// MarkdownRenderer writes the report as GitHub-flavoured markdown
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Format() string { return FormatMarkdown }

func (r *MarkdownRenderer) Render(w io.Writer, report *abtest.Report) error {
	_, err := io.WriteString(w, markdownReport(report))
	return err
}

func markdownReport(report *abtest.Report) string {
	var b strings.Builder

	b.WriteString("# A/B Test Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", report.RunID)
	fmt.Fprintf(&b, "- Generated: %s\n", report.GeneratedAt)
	fmt.Fprintf(&b, "- Source: %s\n", report.Source)
	fmt.Fprintf(&b, "- Metric: %s\n", report.Metric)
	fmt.Fprintf(&b, "- Alpha: %g\n\n", report.Alpha)

	for _, s := range report.Summaries {
		markdownSummary(&b, s)
	}

	if len(report.Combined.Columns) > 0 {
		b.WriteString("## Combined\n\n")
		markdownTable(&b, report.Combined.Columns, report.Combined.Rows)
	}

	if len(report.GroupMeans) > 0 {
		fmt.Fprintf(&b, "## %s Mean by Group\n\n", report.Metric)
		markdownTable(&b, groupMeanHeaders, groupMeanRows(report.GroupMeans))
	}

	if len(report.Outliers) > 0 {
		b.WriteString("## Outlier Capping\n\n")
		markdownTable(&b, outlierHeaders, outlierRows(report.Outliers))
	}

	if hasSequence(report) {
		b.WriteString("## Hypothesis Tests\n\n")
		for _, res := range orderedResults(report.Sequence) {
			fmt.Fprintf(&b, "### %s\n\n", testHeading(res))
			fmt.Fprintf(&b, "H0: %s.\n\n", res.NullHypothesis)
			fmt.Fprintf(&b, "`%s`\n\n", res.StatLine())
			fmt.Fprintf(&b, "**%s**\n\n", res.Verdict())
		}
		fmt.Fprintf(&b, "Mean difference (test - control): %.2f\n\n", report.Sequence.MeanDifference)
		fmt.Fprintf(&b, "> %s\n", report.Sequence.Conclusion(report.Metric))
	}

	return b.String()
}

func markdownSummary(b *strings.Builder, s dataset.Summary) {
	fmt.Fprintf(b, "## %s\n\n", s.Name)
	fmt.Fprintf(b, "### Shape\n\n(%d, %d)\n\n", s.Rows, s.Cols)

	b.WriteString("### Types\n\n")
	markdownTable(b, []string{"Column", "Dtype"}, typeRows(s.Types))

	b.WriteString("### Head\n\n")
	markdownTable(b, s.Head.Columns, s.Head.Rows)

	b.WriteString("### Missing Values\n\n")
	if len(s.Missing) == 0 {
		b.WriteString("_none_\n\n")
	} else {
		markdownTable(b, []string{"Column", "Total Missing", "Ratio"}, missingRows(s.Missing))
	}

	b.WriteString("### Quantiles\n\n")
	markdownTable(b, quantileHeaders(s.Quantiles), quantileRows(s.Quantiles))

	b.WriteString("### Describe\n\n")
	markdownTable(b, describeHeaders, describeRows(s.Describe))
}

func markdownTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("| " + strings.Join(escapeCells(headers), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
	b.WriteString("\n")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
