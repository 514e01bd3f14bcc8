package report

import (
	"encoding/json"
	"io"

	"goabtest/domain/abtest"

	"gopkg.in/yaml.v3"
)

// JSONRenderer writes the report as JSON
type JSONRenderer struct {
	Indent string
}

func (r *JSONRenderer) Format() string { return FormatJSON }

func (r *JSONRenderer) Render(w io.Writer, report *abtest.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	return enc.Encode(report)
}

// YAMLRenderer writes the report as YAML
type YAMLRenderer struct{}

func (r *YAMLRenderer) Format() string { return FormatYAML }

func (r *YAMLRenderer) Render(w io.Writer, report *abtest.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
