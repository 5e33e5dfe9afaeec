package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/manuscript"
)

var addFlags entryFlags

func init() {
	addFlags.register(addCmd)
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manuscript entry to the catalog",
	Long: `Add a manuscript entry to the end of the catalog.

The details payload is the structured JSON produced by a language model
from the 'mscat prompt' template; it is validated before being stored.

Examples:
  mscat add --title "Attention Is All You Need" --author "Ashish Vaswani"
  mscat add --title "..." --details-file reply.json
  cat entry.json | mscat add --json -`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	entry, err := addFlags.buildEntry(cmd)
	if err != nil {
		if errors.Is(err, manuscript.ErrInvalidDetails) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	index, err := store.Add(entry)
	if err != nil {
		exitWithError(ExitError, "adding entry: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added entry [%d] %s\n", index, entry.Title)
	} else {
		outputJSON(IndexResponse{Status: "added", Index: index})
	}

	return nil
}
