package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
	"github.com/dvolk/mscat/internal/manuscript"
)

var editFlags entryFlags

func init() {
	editFlags.register(editCmd)
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit the entry at a catalog index",
	Long: `Edit the entry at a catalog index.

Only the provided flags change; everything else is kept. A --details or
--details-file payload replaces the entire stored details, matching the
paste-the-whole-LLM-reply workflow.

Examples:
  mscat edit 3 --title "Corrected title"
  mscat edit 3 --details-file reply.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	index := parseIndexArg(args[0])

	patch, err := editFlags.buildPatch(cmd)
	if err != nil {
		if errors.Is(err, manuscript.ErrInvalidDetails) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}
	if patch.IsZero() {
		exitWithError(ExitError, "nothing to change: provide at least one field flag")
	}

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	entry, err := store.Update(index, patch)
	if err != nil {
		if errors.Is(err, catalog.ErrIndexOutOfRange) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "updating entry: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated entry [%d] %s\n", index, entry.Title)
	} else {
		outputJSON(IndexResponse{Status: "updated", Index: index})
	}

	return nil
}

// parseIndexArg parses a positional catalog index argument, exiting on
// malformed input. Bounds are checked by the store.
func parseIndexArg(arg string) int {
	index, err := strconv.Atoi(arg)
	if err != nil {
		exitWithError(ExitError, "invalid index %q: expected an integer", arg)
	}
	return index
}
