package excel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"goabtest/domain/dataset"
)

// missingTokens are cell texts read as missing values
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"#N/A": true,
}

// IsMissingToken reports whether a cell text stands for a missing value
func IsMissingToken(cell string) bool {
	return missingTokens[strings.TrimSpace(cell)]
}

// ToFrame converts raw cells into a frame. A column becomes numeric when
// every non-missing cell parses as a number, text otherwise.
func (d *SheetData) ToFrame() (*dataset.Frame, error) {
	columns := make([]*dataset.Column, 0, len(d.Headers))
	for j, header := range d.Headers {
		name := header
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", j)
		}

		numbers := make([]float64, len(d.Rows))
		numeric := true
		for i, row := range d.Rows {
			cell := row[j]
			if IsMissingToken(cell) {
				numbers[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				break
			}
			numbers[i] = v
		}

		if numeric {
			columns = append(columns, dataset.NewNumericColumn(name, numbers))
			continue
		}

		texts := make([]string, len(d.Rows))
		for i, row := range d.Rows {
			if !IsMissingToken(row[j]) {
				texts[i] = row[j]
			}
		}
		columns = append(columns, dataset.NewTextColumn(name, texts))
	}

	f, err := dataset.NewFrame(columns...)
	if err != nil {
		return nil, fmt.Errorf("build frame from %s: %w", d.Source, err)
	}
	return f, nil
}
