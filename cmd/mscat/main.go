// Package main provides the mscat CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
	"github.com/dvolk/mscat/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mscat",
	Short: "Local catalog of academic manuscripts",
	Long: `mscat is a CLI for cataloging academic manuscripts with structured
sub-records (methods, datasets, metrics).

The catalog lives in a single JSON document under .mscat/. Structured
details are normally produced by pasting the manuscript text into an LLM
chat together with the template from 'mscat prompt', then feeding the
reply to 'mscat add --details'. An ephemeral SQLite index serves
full-text search.

All commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// repository. Checks MSCAT_ROOT (with .env loaded), then the global config
// catalog_path, then the current working directory.
func getStartingDirectory() (string, int) {
	_ = godotenv.Load()
	if root := os.Getenv("MSCAT_ROOT"); root != "" {
		return root, 0
	}

	if root := config.GetCatalogPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindRepository finds and validates the repository, exits on error.
// Returns the repository root path.
func mustFindRepository() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		os.Exit(ExitConfigError)
	}
	return repoRoot
}

// mustOpenStore loads the catalog into a record store, exits on error.
func mustOpenStore(repoRoot string) *catalog.Store {
	store, err := catalog.Open(config.CatalogPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "loading catalog: %v", err)
	}
	return store
}

// mustLoadConfig loads repository configuration, exits on error.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
