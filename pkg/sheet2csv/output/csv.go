// Package output reads and writes the delimited text table.
package output

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Options controls how records are written.
type Options struct {
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
}

// With UseCRLF set, csv.Writer drops a lone \r inside a quoted field and
// expands \n to \r\n. Turning a lone \r into \n keeps the break readable.
var loneCR = strings.NewReplacer("\r\n", "\r\n", "\r", "\n")

// Sanitize returns s as valid UTF-8, replacing ill-formed byte sequences
// with U+FFFD.
func Sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := unicode.UTF8.NewEncoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	return out
}

// WriteRecords writes rows as comma-delimited records with standard quoting.
func WriteRecords(w io.Writer, rows [][]string, opts Options) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)
	cw.UseCRLF = opts.UseCRLF

	lineEnd := "\n"
	if opts.UseCRLF {
		lineEnd = "\r\n"
	}

	record := []string{}
	for _, row := range rows {
		record = record[:0]
		for _, field := range row {
			field = Sanitize(field)
			if opts.UseCRLF && strings.Contains(field, "\r") {
				field = loneCR.Replace(field)
			}
			record = append(record, field)
		}
		// csv readers skip blank lines, so a lone empty field is quoted.
		if len(record) == 1 && record[0] == "" {
			cw.Flush()
			if _, err := bw.WriteString(`""` + lineEnd); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return errors.Join(cw.Error(), bw.Flush())
}

// WriteFile creates or truncates path and writes rows to it.
func WriteFile(path string, rows [][]string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(WriteRecords(f, rows, opts), f.Close())
}

// ReadRecords parses comma-delimited records. Quoted fields may span lines;
// records may have differing field counts.
func ReadRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// ReadFile parses the delimited file at path.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRecords(bufio.NewReader(f))
}
