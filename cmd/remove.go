package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

// removeCmd deletes a book optimistically.
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a book from the catalog",
	Long: `Remove a book by identity. The record disappears locally right
away and the delete is pushed to the remote resource; a remote failure puts
the record back.

Examples:
  shelfd remove 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	RootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	if err := a.engine.Delete(ctx, id); err != nil {
		return err
	}

	printBooks(a.store.All(), false)
	return nil
}
