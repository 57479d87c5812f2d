// Package models defines data structures for worksheet conversion.
package models

// Request holds the validated command line inputs.
type Request struct {
	// WorkbookPath is the spreadsheet to read.
	WorkbookPath string `json:"workbook_path"`
	// SheetName is the worksheet to export, matched exactly.
	SheetName string `json:"sheet_name"`
	// OutputPath is the delimited text file to write.
	OutputPath string `json:"output_path"`
}

// Area represents cell coordinate bounds within a worksheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Table is a rectangular worksheet grid anchored at A1.
type Table struct {
	// SheetName is the worksheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Rows holds one slice per worksheet row, each exactly Cols long.
	Rows [][]string `json:"rows"`
	// Cols is the column count of every row.
	Cols int `json:"cols"`
}

// RowCount returns the number of records in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Summary reports the outcome of a conversion.
type Summary struct {
	WorkbookPath string `json:"workbook_path"`
	SheetName    string `json:"sheet_name"`
	OutputPath   string `json:"output_path"`
	RowCount     int    `json:"row_count"`
	ColumnCount  int    `json:"column_count"`
}
