package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/importer"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a legacy flat-format catalog",
	Long: `Import entries from a legacy catalog file where methods, datasets,
and metrics sat at the top level of each entry instead of under a
details key. Imported entries are appended to the current catalog;
string-typed integers and booleans from old LLM pastes are coerced.

Example:
  mscat import manuscripts.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading import file: %v", err)
	}

	entries, err := importer.ParseLegacyCatalog(data)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	for i, e := range entries {
		if _, err := store.Add(e); err != nil {
			exitWithError(ExitError, "adding imported entry %d: %v", i, err)
		}
	}

	if humanOutput {
		fmt.Printf("Imported %d entries (%d total)\n", len(entries), store.Len())
	} else {
		outputJSON(CountResponse{Status: "imported", Entries: len(entries)})
	}

	return nil
}
