package excel

// SheetData is the raw cell grid of one sheet or CSV file
type SheetData struct {
	Source  string     // file path, plus sheet name for workbooks
	Headers []string   // trimmed header row
	Rows    [][]string // data rows, each padded to len(Headers)
}
