package excel

import (
	"fmt"

	"goabtest/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// NamedFrame is a frame destined for one sheet
type NamedFrame struct {
	Sheet string
	Frame *dataset.Frame
}

// WriteWorkbook writes each frame to its own sheet, header row first.
// Missing cells are left empty.
func WriteWorkbook(path string, sheets ...NamedFrame) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.Sheet); err != nil {
			return err
		}
		if err := writeFrame(f, s.Sheet, s.Frame); err != nil {
			return fmt.Errorf("write sheet %q: %w", s.Sheet, err)
		}
	}
	f.SetActiveSheet(0)

	return f.SaveAs(path)
}

func writeFrame(f *excelize.File, sheet string, frame *dataset.Frame) error {
	header := make([]interface{}, 0, len(frame.Columns()))
	for _, name := range frame.ColumnNames() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < frame.Len(); i++ {
		row := make([]interface{}, len(frame.Columns()))
		for j, col := range frame.Columns() {
			switch {
			case col.IsMissing(i):
				row[j] = nil
			case col.Kind == dataset.KindNumeric:
				row[j] = col.Numbers[i]
			default:
				row[j] = col.Strings[i]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
