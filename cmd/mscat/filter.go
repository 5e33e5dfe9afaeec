package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
	"github.com/dvolk/mscat/internal/storage"
)

var filterCriteria catalog.Criteria

func init() {
	filterCmd.Flags().StringVar(&filterCriteria.Model, "model", "", "Match entries with a method of this model_name")
	filterCmd.Flags().StringVar(&filterCriteria.Dataset, "dataset", "", "Match entries with a dataset of this name")
	filterCmd.Flags().StringVar(&filterCriteria.Metric, "metric", "", "Match entries with a metric of this name")
	rootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter entries by nested record names",
	Long: `Filter entries by the names of their nested records. Matching is
exact and case-sensitive; combining flags requires all of them to match.
Entries without details never match.

Examples:
  mscat filter --model GPT-4
  mscat filter --dataset MIMIC-III --metric accuracy`,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	if filterCriteria.IsZero() {
		exitWithError(ExitError, "provide at least one of --model, --dataset, --metric")
	}

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	// Pair hits with their catalog indices so edit/delete can address them.
	var hits []storage.Hit
	for i, e := range store.ListAll() {
		if filterCriteria.Matches(e) {
			hits = append(hits, storage.Hit{Index: i, Entry: e})
		}
	}

	if humanOutput {
		if len(hits) == 0 {
			fmt.Println("No matching entries")
			return nil
		}
		fmt.Printf("%d matching entries:\n\n", len(hits))
		for _, h := range hits {
			printEntryLine(h.Index, h.Entry)
		}
	} else {
		if hits == nil {
			hits = []storage.Hit{}
		}
		outputJSON(hits)
	}

	return nil
}
