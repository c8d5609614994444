package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"shelfd/feature/catalog/models"
)

var (
	addTitle       string
	addAuthor      string
	addDescription string
	addGenre       string
	addYear        string
)

// addCmd creates a book optimistically.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	Long: `Add a book to the catalog. The record appears locally right away
under a placeholder identity and is pushed to the remote resource; once the
remote confirms, the placeholder is swapped for the server-assigned id. If
the remote call fails the record is removed again.

Examples:
  shelfd add --title "Dune" --author "Frank Herbert" --genre sci-fi --year 1965`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Book title (required, at least 3 characters)")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "Author name")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "Genre")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publication year (4 digits)")
	_ = addCmd.MarkFlagRequired("title")
	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	payload := models.Payload{
		Title:       addTitle,
		Author:      addAuthor,
		Description: addDescription,
		Genre:       addGenre,
		Year:        addYear,
	}

	if _, err := a.engine.Create(ctx, payload); err != nil {
		return err
	}

	printBooks(a.store.All(), false)
	return nil
}
