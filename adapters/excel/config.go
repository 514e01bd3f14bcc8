package excel

import "goabtest/domain/abtest"

// Default sheet names of the bidding workbook
const (
	DefaultControlSheet = "Control Group"
	DefaultTestSheet    = "Test Group"
)

// SheetRef points at the table holding one group's rows. Sheet is ignored
// for CSV files.
type SheetRef struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"`
}

// ExcelConfig maps each bidding group to its sheet
type ExcelConfig struct {
	Control SheetRef `json:"control"`
	Test    SheetRef `json:"test"`
}

// DefaultExcelConfig reads both groups from one workbook with the standard sheet names
func DefaultExcelConfig(filePath string) ExcelConfig {
	return ExcelConfig{
		Control: SheetRef{FilePath: filePath, Sheet: DefaultControlSheet},
		Test:    SheetRef{FilePath: filePath, Sheet: DefaultTestSheet},
	}
}

// Ref returns the sheet reference of a group
func (c ExcelConfig) Ref(group abtest.Group) (SheetRef, bool) {
	switch group {
	case abtest.GroupControl:
		return c.Control, true
	case abtest.GroupTest:
		return c.Test, true
	}
	return SheetRef{}, false
}
