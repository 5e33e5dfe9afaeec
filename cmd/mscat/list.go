package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/manuscript"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog entries",
	Long: `List all catalog entries in insertion order.

Examples:
  mscat list
  mscat list --limit 20`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	entries := store.ListAll()
	total := len(entries)
	if listLimit > 0 && listLimit < total {
		entries = entries[:listLimit]
	}

	if humanOutput {
		if total == 0 {
			fmt.Println("No entries in catalog")
			return nil
		}
		if len(entries) < total {
			fmt.Printf("%d entries (showing first %d):\n\n", total, len(entries))
		} else {
			fmt.Printf("%d entries in catalog:\n\n", total)
		}
		for i, e := range entries {
			printEntryLine(i, e)
		}
	} else {
		if entries == nil {
			entries = []manuscript.Entry{}
		}
		outputJSON(entries)
	}

	return nil
}
