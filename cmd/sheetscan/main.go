// Package main provides the CLI entry point for sheetscan.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetscan/pkg/sheetscan"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/logging"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/output"
)

var (
	mode        string
	minRows     int
	minDensity  float64
	noHeader    bool
	noAutoHead  bool
	style       string
	sheets      []string
	printArea   bool
	encoding    string
	delimiter   string
	verbose     bool
	outputPath  string
	pretty      bool
	sheetsDir   string
	regionsOnly bool
	glimpse     bool
	maxRows     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetscan",
		Short: "Find and read tables in loosely structured spreadsheets",
		Long: `sheetscan detects key-value blocks and blank-row separated tables in
xlsx and csv sheets and reads them into named tables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	addDetectionFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newListCmd(), newExtractCmd(), newSheetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addDetectionFlags registers the flags shared by every subcommand.
func addDetectionFlags(pf *pflag.FlagSet) {
	pf.StringVar(&mode, "mode", "auto", "Detection mode: key_value, generic, auto")
	pf.IntVar(&minRows, "min-rows", 2, "Minimum height of a generic table")
	pf.Float64Var(&minDensity, "min-density", 0, "Drop generic tables with a lower fraction of filled cells")
	pf.BoolVar(&noHeader, "no-header", false, "Treat the first row of generic tables as data")
	pf.BoolVar(&noAutoHead, "no-auto-header", false, "Disable header row detection")
	pf.StringVar(&style, "style", models.StyleAssumptions.String(), "Style preset attached to each table")
	pf.StringSliceVar(&sheets, "sheet", nil, "Sheets to scan (repeatable, default: all)")
	pf.BoolVar(&printArea, "print-area", false, "Limit each sheet to its first print area")
	pf.StringVar(&encoding, "encoding", "", "Text encoding of csv input (e.g. cp1252)")
	pf.StringVar(&delimiter, "delimiter", "", "Field delimiter of csv input (default ',' or tab for .tsv)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log detection details to stderr")
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [input]",
		Short: "List the tables found in each sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions()
			if err != nil {
				return err
			}
			wb, err := sheetscan.Extract(args[0], opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			return output.WriteListing(cmd.OutOrStdout(), wb, output.ListingOptions{
				Glimpse: glimpse,
				MaxRows: maxRows,
			})
		},
	}
	cmd.Flags().BoolVarP(&glimpse, "glimpse", "g", false, "Preview the first rows of each table")
	cmd.Flags().IntVar(&maxRows, "max-rows", 3, "Number of preview rows")
	return cmd
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input]",
		Short: "Read every table and write JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().BoolVar(&regionsOnly, "regions-only", false, "Report table locations without reading them")
	return cmd
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input]",
		Short: "Print the sheet names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sheetscan.ListSheets(args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	opts.RegionsOnly = regionsOnly

	wb, err := sheetscan.Extract(args[0], opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// buildOptions maps the persistent flags onto extraction options.
func buildOptions() (sheetscan.Options, error) {
	opts := sheetscan.DefaultOptions()

	m, err := sheetscan.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = m

	s, err := models.ParseStylePreset(style)
	if err != nil {
		return opts, err
	}
	opts.Style = s

	opts.MinRows = minRows
	opts.MinDensity = minDensity
	opts.Sheets = sheets
	opts.UsePrintArea = printArea
	off := false
	if noHeader {
		opts.HasHeader = &off
	}
	if noAutoHead {
		opts.AutoDetectHeader = &off
	}

	opts.CSV.Encoding = encoding
	if delimiter != "" {
		d := delimiter
		if d == `\t` {
			d = "\t"
		}
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) {
			return opts, fmt.Errorf("invalid delimiter %q: must be a single character", delimiter)
		}
		opts.CSV.Comma = r
	}

	return opts, nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range wb.SheetOrder {
		sheet := wb.Sheets[sheetName]
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
