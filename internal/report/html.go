package report

import (
	"fmt"
	"io"

	"goabtest/domain/abtest"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLRenderer converts the markdown report into a standalone HTML page
type HTMLRenderer struct{}

func (r *HTMLRenderer) Format() string { return FormatHTML }

func (r *HTMLRenderer) Render(w io.Writer, report *abtest.Report) error {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: fmt.Sprintf("A/B Test Report: %s", report.Metric),
	})

	page := markdown.ToHTML([]byte(markdownReport(report)), p, renderer)
	_, err := w.Write(page)
	return err
}
