package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
	"github.com/dvolk/mscat/internal/config"
	"github.com/dvolk/mscat/internal/storage"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite search index from the catalog",
	Long: `Rebuild the ephemeral SQLite search index from the catalog JSON
document. The index is derived data: deleting .mscat/cache/ and running
rebuild always yields a fresh one.

Example:
  mscat rebuild`,
	RunE: runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	db := mustRebuildCache(repoRoot, store)
	defer db.Close()

	count, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting indexed entries: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d entries\n", count)
	} else {
		outputJSON(CountResponse{Status: "rebuilt", Entries: count})
	}

	return nil
}

// mustRebuildCache opens the SQLite cache and repopulates it from the
// store, exiting on error. The caller is responsible for Close.
func mustRebuildCache(repoRoot string, store *catalog.Store) *storage.DB {
	// The cache dir is documented as safe to delete, so recreate it
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening search index: %v", err)
	}

	if _, err := db.Rebuild(store.ListAll()); err != nil {
		db.Close()
		exitWithError(ExitError, "rebuilding search index: %v", err)
	}
	return db
}
