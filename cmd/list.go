package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shelfd/feature/catalog/models"
)

var listJSONOutput bool

// listCmd prints the local catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the local catalog",
	Long: `List the books in the local catalog, most recently created first.
The catalog is read from the last persisted snapshot; no network call is made.

Use --json for machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output in JSON format")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	printBooks(a.store.All(), listJSONOutput)
	return nil
}

// printBooks renders the catalog on the terminal.
func printBooks(books []models.Book, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(books)
		return
	}

	if len(books) == 0 {
		fmt.Println("catalog is empty, run 'shelfd pull' or 'shelfd add' first")
		return
	}

	for _, b := range books {
		id := fmt.Sprintf("%d", b.ID)
		if b.IsPlaceholder() {
			id = color.YellowString("%d (pending)", b.ID)
		}
		line := fmt.Sprintf("%s  %s", id, color.New(color.Bold).Sprint(b.Title))
		if b.Author != "" {
			line += " by " + b.Author
		}
		if b.Year != "" {
			line += fmt.Sprintf(" (%s)", b.Year)
		}
		if b.Genre != "" {
			line += "  " + color.CyanString("[%s]", b.Genre)
		}
		fmt.Println(line)
	}
}
