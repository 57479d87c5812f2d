// Package parser provides workbook reading utilities.
package parser

import (
	"path/filepath"
	"strings"
)

// Workbook is a read-only view over a spreadsheet file.
type Workbook interface {
	// SheetNames returns the worksheet names in workbook order.
	SheetNames() []string
	// ReadSheet returns the cell text of a worksheet, row by row.
	// Rows may have different lengths; trailing empty cells can be omitted.
	ReadSheet(name string) ([][]string, error)
	// Dimension returns the used range declared by the worksheet, if any.
	Dimension(name string) (string, error)
	// Close releases the underlying file.
	Close() error
}

// OpenOptions configures how a workbook is opened.
type OpenOptions struct {
	// Password decrypts a protected OOXML workbook.
	Password string
	// RawCellValue returns stored values instead of number-formatted text.
	RawCellValue bool
}

// Open opens the workbook at path, choosing a reader by file extension.
// Unknown extensions go to the OOXML reader, which inspects the content.
func Open(path string, opts OpenOptions) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		wb, err := OpenXLS(path)
		if err != nil {
			return nil, err
		}
		return wb, nil
	default:
		wb, err := OpenXLSX(path, opts)
		if err != nil {
			return nil, err
		}
		return wb, nil
	}
}

// HasSheet reports whether wb contains a worksheet named exactly name.
// The comparison is case-sensitive.
func HasSheet(wb Workbook, name string) bool {
	for _, s := range wb.SheetNames() {
		if s == name {
			return true
		}
	}
	return false
}
