// Package normalize removes line breaks from delimited table fields.
package normalize

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/output"
)

// lineBreakChars lists every character Field replaces.
const lineBreakChars = "\r\n\u0085\u2028\u2029"

// CRLF is listed first so the pair collapses to one space.
var lineBreaks = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	"\u0085", " ",
	"\u2028", " ",
	"\u2029", " ",
)

// ContainsLineBreak reports whether s holds any character Field replaces.
func ContainsLineBreak(s string) bool {
	return strings.ContainsAny(s, lineBreakChars)
}

// Field replaces each line break in s with a single space.
// A CRLF pair counts as one line break.
func Field(s string) string {
	if !ContainsLineBreak(s) {
		return s
	}
	return lineBreaks.Replace(s)
}

// Record normalizes every field of record in place and returns it.
func Record(record []string) []string {
	for i, field := range record {
		record[i] = Field(field)
	}
	return record
}

// Rows normalizes every record of rows in place and returns it.
func Rows(rows [][]string) [][]string {
	for _, record := range rows {
		Record(record)
	}
	return rows
}

// File rewrites the delimited file at path so that no field holds a line
// break. Records are parsed first, so quoted line breaks are treated as field
// content rather than record terminators. It returns the number of records
// written.
func File(path string, opts output.Options) (int, error) {
	rows, err := output.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	Rows(rows)

	if err := output.WriteFile(path, rows, opts); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(rows), nil
}
