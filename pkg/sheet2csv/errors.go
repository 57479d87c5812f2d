package sheet2csv

import (
	"errors"
	"fmt"
)

// ErrUsage indicates a malformed command line.
var ErrUsage = errors.New("incorrect usage")

// ErrInputNotFound indicates the workbook path is not an existing file.
var ErrInputNotFound = errors.New("workbook file not found")

// ErrMissingName indicates an empty worksheet name.
var ErrMissingName = errors.New("worksheet name not given")

// ErrWorksheetNotFound indicates the workbook has no sheet with the requested name.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// ErrWorkbookRead indicates the workbook could not be opened or parsed.
var ErrWorkbookRead = errors.New("unable to read workbook")

// ErrOutputWrite indicates the exported table could not be written.
var ErrOutputWrite = errors.New("unable to write output file")

// ErrNormalizeIO indicates the exported file could not be re-read or rewritten.
var ErrNormalizeIO = errors.New("unable to normalize output file")

// ConversionError represents a failure in one phase of a conversion.
type ConversionError struct {
	Stage string // "validate", "export", "normalize"
	Path  string
	Kind  error // one of the Err* sentinels
	Err   error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Stage, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, path string, kind, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Kind:  kind,
		Err:   err,
	}
}
