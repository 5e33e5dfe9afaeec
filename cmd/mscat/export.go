package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/config"
	"github.com/dvolk/mscat/internal/export"
)

var exportFormat string

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: bibtex, csv (default from config)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to BibTeX or CSV",
	Long: `Export the whole catalog to stdout.

BibTeX emits one @misc record per entry. CSV flattens nested record
names into columns; the JSON catalog remains the lossless format.

Examples:
  mscat export > catalog.bib
  mscat export --format csv > catalog.csv`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	format := exportFormat
	if format == "" {
		cfg := mustLoadConfig(repoRoot)
		format = cfg.ExportFormat
	}
	if format == "" {
		format = "bibtex"
	}

	entries := store.ListAll()

	switch format {
	case "bibtex":
		fmt.Print(export.ToBibTeXList(entries))
	case "csv":
		if err := export.WriteCSV(os.Stdout, entries); err != nil {
			exitWithError(ExitError, "writing CSV: %v", err)
		}
	default:
		exitWithError(ExitError, "unknown export format %q (valid: %v)", format, config.ValidExportFormats)
	}

	return nil
}
