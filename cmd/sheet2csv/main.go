// Package main provides the CLI entry point for sheet2csv.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheet2csv-go/internal/logger"
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv"
)

// Exit codes, one per failure kind.
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitInputNotFound
	exitMissingName
	exitWorksheetNotFound
	exitWorkbookRead
	exitNormalizeIO
	exitOutputWrite
)

// cliFlags holds the values bound to one root command.
type cliFlags struct {
	rawValues bool
	useCRLF   bool
	twoPass   bool
	password  string
	verbose   bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "sheet2csv <workbook_path> <worksheet_name> <output_path>",
		Short: "Export one worksheet as UTF-8 CSV with line breaks removed from cells",
		Long: `sheet2csv writes a single worksheet of an Excel workbook to a
comma-delimited UTF-8 file. Line breaks inside cells are replaced with a
space so every record fits on one line, ready for statistical import.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, flags, stdout)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stdout)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", sheet2csv.ErrUsage, err)
	})

	rootCmd.Flags().BoolVar(&flags.rawValues, "raw", false, "Write stored cell values instead of formatted text")
	rootCmd.Flags().BoolVar(&flags.useCRLF, "crlf", false, "Terminate records with CRLF")
	rootCmd.Flags().BoolVar(&flags.twoPass, "two-pass", false, "Export cells as-is, then remove line breaks from the written file")
	rootCmd.Flags().StringVar(&flags.password, "password", "", "Password for an encrypted workbook")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log progress to stderr")

	return rootCmd
}

func execute(args []string, stdout io.Writer) int {
	rootCmd := newRootCmd(stdout)
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stdout, "\n%v\n", err)
	if errors.Is(err, sheet2csv.ErrUsage) || !isConversionError(err) {
		fmt.Fprintln(stdout, rootCmd.UsageString())
	}
	logger.Debug("Conversion failed", "exit_code", exitCode(err), "error", err)
	return exitCode(err)
}

func run(args []string, flags *cliFlags, stdout io.Writer) error {
	logger.SetVerbose(flags.verbose)

	req, err := sheet2csv.ValidateArgs(args)
	if err != nil {
		return err
	}

	opts := sheet2csv.DefaultOptions()
	opts.RawValues = flags.rawValues
	opts.UseCRLF = flags.useCRLF
	opts.TwoPass = flags.twoPass
	opts.Password = flags.password

	logger.Debug("Starting conversion",
		"workbook", req.WorkbookPath,
		"sheet", req.SheetName,
		"output", req.OutputPath)

	summary, err := sheet2csv.Convert(req, opts)
	if err != nil {
		return err
	}

	logger.Info("Conversion finished",
		"output", summary.OutputPath,
		"row_count", summary.RowCount,
		"column_count", summary.ColumnCount)
	fmt.Fprintf(stdout, "Finished: row_count=%d; column_count=%d\n", summary.RowCount, summary.ColumnCount)
	return nil
}

func isConversionError(err error) bool {
	var convErr *sheet2csv.ConversionError
	return errors.As(err, &convErr)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, sheet2csv.ErrUsage):
		return exitUsage
	case errors.Is(err, sheet2csv.ErrInputNotFound):
		return exitInputNotFound
	case errors.Is(err, sheet2csv.ErrMissingName):
		return exitMissingName
	case errors.Is(err, sheet2csv.ErrWorksheetNotFound):
		return exitWorksheetNotFound
	case errors.Is(err, sheet2csv.ErrWorkbookRead):
		return exitWorkbookRead
	case errors.Is(err, sheet2csv.ErrNormalizeIO):
		return exitNormalizeIO
	case errors.Is(err, sheet2csv.ErrOutputWrite):
		return exitOutputWrite
	default:
		return exitFailure
	}
}
