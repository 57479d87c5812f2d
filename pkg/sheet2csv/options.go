// Package sheet2csv converts one worksheet of a workbook into a UTF-8
// comma-delimited file whose fields contain no line breaks.
package sheet2csv

import (
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/output"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/parser"
)

// Options configures conversion behavior.
type Options struct {
	// RawValues writes stored cell values instead of number-formatted text.
	RawValues bool
	// UseCRLF terminates records with \r\n.
	UseCRLF bool
	// TwoPass writes cells unmodified and then normalizes the written file,
	// instead of replacing line breaks before the first write.
	TwoPass bool
	// Password opens an encrypted OOXML workbook.
	Password string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) openOptions() parser.OpenOptions {
	return parser.OpenOptions{
		Password:     o.Password,
		RawCellValue: o.RawValues,
	}
}

func (o Options) outputOptions() output.Options {
	return output.Options{UseCRLF: o.UseCRLF}
}
