package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/config"
	"github.com/dvolk/mscat/internal/storage"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = config default)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the catalog",
	Long: `Full-text search over titles, abstracts, authors, and the names of
nested records. The SQLite index is rebuilt from the catalog before each
search, so results always reflect the JSON document.

For exact-match filtering on nested record names, use 'mscat filter'.

Examples:
  mscat search transformer
  mscat search "medical EHR" --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	limit := searchLimit
	if limit <= 0 {
		cfg := mustLoadConfig(repoRoot)
		limit = cfg.SearchLimit
	}
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}

	db := mustRebuildCache(repoRoot, store)
	defer db.Close()

	hits, err := db.Search(query, limit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(hits) == 0 {
			fmt.Println("No matching entries")
			return nil
		}
		fmt.Printf("%d matching entries:\n\n", len(hits))
		for _, h := range hits {
			fmt.Printf("  [%3d] %s\n", h.Index, truncateString(h.Entry.Title, SearchTitleMaxLen))
			if len(h.Entry.Authors) > 0 {
				fmt.Printf("        %s\n", truncateString(strings.Join(h.Entry.Authors, ", "), SearchTitleMaxLen))
			}
		}
	} else {
		if hits == nil {
			hits = []storage.Hit{}
		}
		outputJSON(hits)
	}

	return nil
}
