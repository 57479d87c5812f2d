package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// XLSWorkbook reads legacy BIFF .xls workbooks.
type XLSWorkbook struct {
	file *os.File
	wb   *xls.WorkBook
}

// OpenXLS opens a BIFF8 workbook. Text is decoded to UTF-8.
func OpenXLS(path string) (wb *XLSWorkbook, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// The BIFF decoder panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			wb, err = nil, fmt.Errorf("malformed xls file: %v", r)
		}
	}()

	book, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		f.Close()
		return nil, err
	}
	return &XLSWorkbook{file: f, wb: book}, nil
}

// SheetNames returns all worksheet names.
func (x *XLSWorkbook) SheetNames() []string {
	names := make([]string, 0, x.wb.NumSheets())
	for i := 0; i < x.wb.NumSheets(); i++ {
		if s := x.wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}
	return names
}

func (x *XLSWorkbook) sheet(name string) *xls.WorkSheet {
	for i := 0; i < x.wb.NumSheets(); i++ {
		if s := x.wb.GetSheet(i); s != nil && s.Name == name {
			return s
		}
	}
	return nil
}

// ReadSheet extracts cell text from a sheet.
func (x *XLSWorkbook) ReadSheet(name string) (rows [][]string, err error) {
	s := x.sheet(name)
	if s == nil {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}

	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("malformed sheet %q: %v", name, r)
		}
	}()

	return collectRows(int(s.MaxRow), func(i int) cellRow {
		if row := s.Row(i); row != nil {
			return row
		}
		return nil
	}), nil
}

// cellRow is the part of an xls row the sheet walk reads.
type cellRow interface {
	LastCol() int
	Col(i int) string
}

// collectRows walks rows 0..maxRow. rowAt returns nil for rows with no
// record; those come back empty. Trailing empty cells and rows are dropped.
func collectRows(maxRow int, rowAt func(int) cellRow) [][]string {
	rows := make([][]string, 0, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		row := rowAt(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, trimTrailingEmpty(cells))
	}
	return trimTrailingEmptyRows(rows)
}

// Dimension is not tracked for BIFF files; the used range comes from the cells.
func (x *XLSWorkbook) Dimension(name string) (string, error) {
	if x.sheet(name) == nil {
		return "", fmt.Errorf("sheet %s does not exist", name)
	}
	return "", nil
}

func (x *XLSWorkbook) Close() error {
	return x.file.Close()
}

func trimTrailingEmpty(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	n := len(rows)
	for n > 0 && len(rows[n-1]) == 0 {
		n--
	}
	return rows[:n]
}
