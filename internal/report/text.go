package report

import (
	"fmt"
	"io"
	"strings"

	"goabtest/domain/abtest"
	"goabtest/domain/dataset"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	acceptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	emptyMissing = "Empty DataFrame"
)

// TextRenderer prints the console report with boxed tables
type TextRenderer struct{}

func (r *TextRenderer) Format() string { return FormatText }

func (r *TextRenderer) Render(w io.Writer, report *abtest.Report) error {
	var b strings.Builder

	for _, s := range report.Summaries {
		writeSummary(&b, s)
	}

	if len(report.Combined.Columns) > 0 {
		b.WriteString(titleStyle.Render("##################### Combined #####################") + "\n")
		b.WriteString(sectionTitle("Head") + "\n")
		b.WriteString(renderTable(report.Combined.Columns, report.Combined.Rows) + "\n")
	}

	if len(report.GroupMeans) > 0 {
		b.WriteString(sectionTitle(fmt.Sprintf("%s Mean by Group", report.Metric)) + "\n")
		b.WriteString(renderTable(groupMeanHeaders, groupMeanRows(report.GroupMeans)) + "\n")
	}

	if len(report.Outliers) > 0 {
		b.WriteString(sectionTitle("Outlier Capping") + "\n")
		b.WriteString(renderTable(outlierHeaders, outlierRows(report.Outliers)) + "\n")
	}

	if hasSequence(report) {
		b.WriteString(titleStyle.Render("##################### Hypothesis Tests #####################") + "\n")
		for _, res := range orderedResults(report.Sequence) {
			b.WriteString(sectionTitle(testHeading(res)) + "\n")
			b.WriteString(res.StatLine() + "\n")
			style := acceptStyle
			if res.Rejected {
				style = rejectStyle
			}
			b.WriteString(style.Render(res.Verdict()) + "\n")
		}
		b.WriteString(fmt.Sprintf("\nMean difference (test - control): %.2f\n", report.Sequence.MeanDifference))
		b.WriteString(report.Sequence.Conclusion(report.Metric) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, s dataset.Summary) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("##################### %s #####################", s.Name)) + "\n")

	b.WriteString(sectionTitle("Shape") + "\n")
	fmt.Fprintf(b, "(%d, %d)\n", s.Rows, s.Cols)

	b.WriteString(sectionTitle("Types") + "\n")
	b.WriteString(renderTable([]string{"Column", "Dtype"}, typeRows(s.Types)) + "\n")

	b.WriteString(sectionTitle("Head") + "\n")
	b.WriteString(renderTable(s.Head.Columns, s.Head.Rows) + "\n")

	b.WriteString(sectionTitle("Missing Values") + "\n")
	if len(s.Missing) == 0 {
		b.WriteString(emptyMissing + "\n")
	} else {
		b.WriteString(renderTable([]string{"Column", "Total Missing", "Ratio"}, missingRows(s.Missing)) + "\n")
	}

	b.WriteString(sectionTitle("Quantiles") + "\n")
	b.WriteString(renderTable(quantileHeaders(s.Quantiles), quantileRows(s.Quantiles)) + "\n")

	b.WriteString(sectionTitle("Describe") + "\n")
	b.WriteString(renderTable(describeHeaders, describeRows(s.Describe)) + "\n")
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
