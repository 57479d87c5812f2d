package parser

import (
	"github.com/xuri/excelize/v2"
)

// XLSXWorkbook reads Office Open XML workbooks through excelize.
type XLSXWorkbook struct {
	file *excelize.File
	raw  bool
}

// OpenXLSX opens an .xlsx, .xlsm, .xltx or .xltm workbook.
func OpenXLSX(path string, opts OpenOptions) (*XLSXWorkbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{
		Password:     opts.Password,
		RawCellValue: opts.RawCellValue,
	})
	if err != nil {
		return nil, err
	}
	return &XLSXWorkbook{file: f, raw: opts.RawCellValue}, nil
}

// SheetNames returns all worksheet names.
func (x *XLSXWorkbook) SheetNames() []string {
	return x.file.GetSheetList()
}

// ReadSheet extracts cell text from a sheet.
// Rows between data rows come back empty; trailing empty rows are dropped.
func (x *XLSXWorkbook) ReadSheet(name string) ([][]string, error) {
	return x.file.GetRows(name, excelize.Options{RawCellValue: x.raw})
}

// Dimension returns the worksheet's declared range reference, e.g. "A1:D10".
func (x *XLSXWorkbook) Dimension(name string) (string, error) {
	return x.file.GetSheetDimension(name)
}

func (x *XLSXWorkbook) Close() error {
	return x.file.Close()
}
