package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  mscat config                       # Show all config
  mscat config export-format         # Get specific value
  mscat config export-format csv     # Set value

Keys:
  export-format  Default format for mscat export (bibtex, csv)
  search-limit   Default result cap for mscat search`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the JSON shape for config get.
type ConfigResponse struct {
	ExportFormat string `json:"export_format"`
	SearchLimit  int    `json:"search_limit"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("export-format: %s\n", cfg.ExportFormat)
			fmt.Printf("search-limit:  %d\n", cfg.SearchLimit)
		} else {
			outputJSON(ConfigResponse{
				ExportFormat: cfg.ExportFormat,
				SearchLimit:  cfg.SearchLimit,
			})
		}
		return nil
	}

	key := args[0]

	// One arg: get
	if len(args) == 1 {
		switch key {
		case "export-format":
			fmt.Println(cfg.ExportFormat)
		case "search-limit":
			fmt.Println(cfg.SearchLimit)
		default:
			exitWithError(ExitError, "unknown config key: %s", key)
		}
		return nil
	}

	// Two args: set
	value := args[1]
	switch key {
	case "export-format":
		if err := config.ValidateExportFormat(value); err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		cfg.ExportFormat = value
	case "search-limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			exitWithError(ExitDataError, "invalid search-limit %q: expected a non-negative integer", value)
		}
		cfg.SearchLimit = limit
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}

	return nil
}
