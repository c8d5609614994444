package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"shelfd/feature/catalog/models"
)

var (
	updateTitle       string
	updateAuthor      string
	updateDescription string
	updateGenre       string
	updateYear        string
)

// updateCmd applies a partial update optimistically.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a book",
	Long: `Update fields of a book by identity. Only the flags you pass are
changed; the rest of the record stays as it is. The change is applied
locally right away and pushed to the remote resource; a remote failure
restores the record to its prior state.

Examples:
  shelfd update 42 --title "Dune Messiah"
  shelfd update 42 --genre sci-fi --year 1969`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateAuthor, "author", "", "New author")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCmd.Flags().StringVar(&updateGenre, "genre", "", "New genre")
	updateCmd.Flags().StringVar(&updateYear, "year", "", "New publication year")
	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	// Only flags explicitly set on the command line end up in the patch,
	// so an untouched flag never clears a field.
	var patch models.Patch
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
	}
	if cmd.Flags().Changed("author") {
		patch.Author = &updateAuthor
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}
	if cmd.Flags().Changed("genre") {
		patch.Genre = &updateGenre
	}
	if cmd.Flags().Changed("year") {
		patch.Year = &updateYear
	}
	if patch.IsZero() {
		return cmd.Help()
	}

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	if _, err := a.engine.Update(ctx, id, patch); err != nil {
		return err
	}

	printBooks(a.store.All(), false)
	return nil
}
