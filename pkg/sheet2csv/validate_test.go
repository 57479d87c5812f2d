package sheet2csv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateArgs(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "book.xlsx")
	if err := os.WriteFile(workbook, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	out := filepath.Join(dir, "out.csv")

	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"no args", nil, ErrUsage},
		{"two args", []string{workbook, "Sheet1"}, ErrUsage},
		{"four args", []string{workbook, "Sheet1", out, "extra"}, ErrUsage},
		{"missing workbook", []string{filepath.Join(dir, "nope.xlsx"), "Sheet1", out}, ErrInputNotFound},
		{"directory workbook", []string{dir, "Sheet1", out}, ErrInputNotFound},
		{"empty name", []string{workbook, "", out}, ErrMissingName},
		{"blank name", []string{workbook, "  \t", out}, ErrMissingName},
		{"missing workbook beats empty name", []string{"nope.xlsx", "", out}, ErrInputNotFound},
		{"valid", []string{workbook, "Sheet1", out}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateArgs(tt.args)
			if tt.kind == nil {
				if err != nil {
					t.Fatalf("ValidateArgs returned %v, expected success", err)
				}
				return
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("ValidateArgs returned %v, expected %v", err, tt.kind)
			}
			var convErr *ConversionError
			if !errors.As(err, &convErr) || convErr.Stage != "validate" {
				t.Errorf("Expected validate ConversionError, got %#v", err)
			}
		})
	}
}

func TestValidateArgsTrims(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "book.xlsx")
	if err := os.WriteFile(workbook, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	req, err := ValidateArgs([]string{"  " + workbook + "\n", " Not coded ", "\tout.csv "})
	if err != nil {
		t.Fatalf("ValidateArgs failed: %v", err)
	}
	if req.WorkbookPath != workbook {
		t.Errorf("Expected workbook %q, got %q", workbook, req.WorkbookPath)
	}
	if req.SheetName != "Not coded" {
		t.Errorf("Expected sheet 'Not coded', got %q", req.SheetName)
	}
	if req.OutputPath != "out.csv" {
		t.Errorf("Expected output 'out.csv', got %q", req.OutputPath)
	}
}
