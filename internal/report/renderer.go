// Package report renders analysis reports in the supported output formats.
package report

import (
	"fmt"
	"strings"

	"goabtest/internal/errors"
	"goabtest/ports"
)

// Format names
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// NewRenderer returns the renderer for a format name (case-insensitive)
func NewRenderer(format string) (ports.ReportRenderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return &TextRenderer{}, nil
	case FormatMarkdown, "md":
		return &MarkdownRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	case FormatYAML, "yml":
		return &YAMLRenderer{}, nil
	}
	return nil, errors.InvalidInput(fmt.Sprintf("unknown output format %q", format))
}

func sectionTitle(name string) string {
	return fmt.Sprintf("--------------------- %s ---------------------", name)
}
