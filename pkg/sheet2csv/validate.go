package sheet2csv

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/models"
)

// ValidateArgs checks the three positional arguments (workbook path,
// worksheet name, output path) and returns them trimmed.
// The output path is not checked; it may or may not exist.
func ValidateArgs(args []string) (models.Request, error) {
	if len(args) != 3 {
		return models.Request{}, NewConversionError("validate", "", ErrUsage,
			fmt.Errorf("incorrect number of input parameters: expected 3, got %d", len(args)))
	}

	req := models.Request{
		WorkbookPath: strings.TrimSpace(args[0]),
		SheetName:    strings.TrimSpace(args[1]),
		OutputPath:   strings.TrimSpace(args[2]),
	}

	info, err := os.Stat(req.WorkbookPath)
	if err != nil {
		return models.Request{}, NewConversionError("validate", req.WorkbookPath, ErrInputNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return models.Request{}, NewConversionError("validate", req.WorkbookPath, ErrInputNotFound, nil)
	}

	if req.SheetName == "" {
		return models.Request{}, NewConversionError("validate", req.WorkbookPath, ErrMissingName, nil)
	}

	return req, nil
}
