package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the entry at a catalog index",
	Long: `Delete the entry at a catalog index.

Later entries shift down by one, so their indices change.

Example:
  mscat delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	index := parseIndexArg(args[0])

	repoRoot := mustFindRepository()
	store := mustOpenStore(repoRoot)

	if err := store.Delete(index); err != nil {
		if errors.Is(err, catalog.ErrIndexOutOfRange) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "deleting entry: %v", err)
	}

	if humanOutput {
		fmt.Printf("Deleted entry [%d] (%d entries remain)\n", index, store.Len())
	} else {
		outputJSON(IndexResponse{Status: "deleted", Index: index})
	}

	return nil
}
