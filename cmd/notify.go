package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"shelfd/feature/catalog"
	"shelfd/feature/catalog/models"
)

// cliNotify is the notifier factory the terminal commands hand to newApp.
func cliNotify(*zap.Logger) catalog.Notifier {
	return cliNotifier{}
}

// cliNotifier surfaces engine notifications on the terminal. Render passes
// stay silent; commands print the final catalog state themselves when it is
// useful.
type cliNotifier struct{}

func (cliNotifier) RenderNeeded([]models.Book) {}

func (cliNotifier) OperationError(message string) {
	fmt.Printf("%s %s\n", color.RedString("✗"), message)
}

func (cliNotifier) OperationSuccess(message string) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), message)
}
