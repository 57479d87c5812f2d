package sheet2csv

import (
	"github.com/ukaji3/sheet2csv-go/internal/logger"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/models"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/normalize"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/output"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/parser"
)

// ReadTable reads a worksheet into a rectangular table covering its used range.
// The workbook is closed before ReadTable returns.
func ReadTable(path, sheetName string, opts Options) (*models.Table, error) {
	wb, err := parser.Open(path, opts.openOptions())
	if err != nil {
		return nil, NewConversionError("export", path, ErrWorkbookRead, err)
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.Warn("Failed to close workbook", "path", path, "error", err)
		}
	}()

	if !parser.HasSheet(wb, sheetName) {
		logger.Debug("Worksheet lookup failed", "sheet", sheetName, "available", wb.SheetNames())
		return nil, NewConversionError("export", sheetName, ErrWorksheetNotFound, nil)
	}

	rows, err := wb.ReadSheet(sheetName)
	if err != nil {
		return nil, NewConversionError("export", path, ErrWorkbookRead, err)
	}

	dimension, err := wb.Dimension(sheetName)
	if err != nil {
		// The declared range is optional; the cells alone define the extent.
		logger.Warn("Failed to read sheet dimension", "sheet", sheetName, "error", err)
		dimension = ""
	}

	table := &models.Table{SheetName: sheetName, Rows: [][]string{}}
	if area, ok := parser.UsedArea(rows, dimension); ok {
		table.Rows = parser.Rectangularize(rows, area)
		table.Cols = area.C2
	}

	logger.Debug("Read worksheet",
		"path", path,
		"sheet", sheetName,
		"dimension", dimension,
		"row_count", table.RowCount(),
		"column_count", table.Cols)

	return table, nil
}

// Export writes the requested worksheet to req.OutputPath, one record per
// row and one field per cell. Unless opts.TwoPass is set, line breaks are
// replaced while writing. The output file is only created once the
// worksheet has been read successfully.
func Export(req models.Request, opts Options) (*models.Summary, error) {
	table, err := ReadTable(req.WorkbookPath, req.SheetName, opts)
	if err != nil {
		return nil, err
	}

	if !opts.TwoPass {
		normalize.Rows(table.Rows)
	}

	if err := output.WriteFile(req.OutputPath, table.Rows, opts.outputOptions()); err != nil {
		return nil, NewConversionError("export", req.OutputPath, ErrOutputWrite, err)
	}

	logger.Debug("Exported worksheet", "output", req.OutputPath, "two_pass", opts.TwoPass)

	return &models.Summary{
		WorkbookPath: req.WorkbookPath,
		SheetName:    req.SheetName,
		OutputPath:   req.OutputPath,
		RowCount:     table.RowCount(),
		ColumnCount:  table.Cols,
	}, nil
}

// Normalize rewrites the delimited file at path so that no field contains a
// line break. On failure the file is left as it was found or partially written.
func Normalize(path string, opts Options) error {
	n, err := normalize.File(path, opts.outputOptions())
	if err != nil {
		return NewConversionError("normalize", path, ErrNormalizeIO, err)
	}
	logger.Debug("Normalized output", "path", path, "records", n)
	return nil
}

// Convert runs the export phase and, in two-pass mode, the normalize phase.
func Convert(req models.Request, opts Options) (*models.Summary, error) {
	summary, err := Export(req, opts)
	if err != nil {
		return nil, err
	}

	if opts.TwoPass {
		if err := Normalize(req.OutputPath, opts); err != nil {
			return nil, err
		}
	}

	return summary, nil
}
