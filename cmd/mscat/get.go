package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Get a single entry by catalog index",
	Long: `Get a single entry by its catalog index.

Example:
  mscat get 3`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	index := parseIndexArg(args[0])

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	entry, err := store.Get(index)
	if err != nil {
		if errors.Is(err, catalog.ErrIndexOutOfRange) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "getting entry: %v", err)
	}

	if humanOutput {
		printEntryDetail(index, entry)
	} else {
		outputJSON(entry)
	}

	return nil
}
