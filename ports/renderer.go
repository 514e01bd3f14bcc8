package ports

import (
	"io"

	"goabtest/domain/abtest"
)

// ReportRenderer writes an analysis report in one output format
type ReportRenderer interface {
	Format() string
	Render(w io.Writer, report *abtest.Report) error
}
