package main

import (
	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/browse"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in a terminal UI",
	Long: `Browse the catalog interactively: scroll and fuzzy-filter the entry
list, press enter for the full entry, q to quit. Read-only; use add,
edit, and delete to change the catalog.

Example:
  mscat browse`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	if err := browse.Run(store.ListAll()); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}
