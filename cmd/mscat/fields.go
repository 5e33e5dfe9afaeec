package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List unique models, datasets, and metrics across the catalog",
	Long: `List the deduplicated model, dataset, and metric names found in the
nested records of every catalog entry.

Example:
  mscat fields`,
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	summary := catalog.CollectFields(store.ListAll())

	if humanOutput {
		printNameSection("Models", summary.Models)
		printNameSection("Datasets", summary.Datasets)
		printNameSection("Metrics", summary.Metrics)
	} else {
		outputJSON(summary)
	}

	return nil
}

func printNameSection(heading string, names []string) {
	headingColor.Printf("%s (%d):\n", heading, len(names))
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
	fmt.Println()
}
