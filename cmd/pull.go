package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pullLimit int

// pullCmd fetches the initial record set from the remote resource.
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the catalog from the remote resource",
	Long: `Fetch up to the configured page size of records from the remote
resource, normalize them into the canonical book shape, and replace the
local catalog with the result.

Examples:
  # Pull with the configured page size
  shelfd pull

  # Pull a specific number of records
  shelfd pull --limit 25`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().IntVar(&pullLimit, "limit", 0, "Number of records to fetch (0 uses the configured page size)")
	RootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	limit := pullLimit
	if limit <= 0 {
		limit = a.cfg.Remote.PageLimit
	}

	count, err := a.engine.Pull(ctx, limit)
	if err != nil {
		return err
	}

	a.log.Info("catalog pulled", zap.Int("books", count))
	printBooks(a.store.All(), false)
	return nil
}
