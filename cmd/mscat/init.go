package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
	"github.com/dvolk/mscat/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new manuscript catalog",
	Long: `Initialize a new manuscript catalog in the current directory.

Creates:
  .mscat/
  ├── catalog.json    # Empty catalog
  ├── config.json     # Default config
  └── cache/          # Ephemeral SQLite index (safe to delete)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a mscat repository")
	}

	if err := os.MkdirAll(config.MscatPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .mscat directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	// Empty catalog: a JSON document holding an empty array
	if err := catalog.WriteFile(config.CatalogPath(root), nil); err != nil {
		exitWithError(ExitError, "creating catalog.json: %v", err)
	}

	cfg := &config.Config{
		ExportFormat: "bibtex",
		SearchLimit:  config.DefaultSearchLimit,
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized mscat repository in %s\n", root)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	}

	return nil
}
