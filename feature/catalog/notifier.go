package catalog

import (
	"go.uber.org/zap"

	"shelfd/feature/catalog/models"
)

// Notifier is the contract between the engine and a presentation surface.
// All notifications are fire-and-forget; the engine never waits on them.
type Notifier interface {
	// RenderNeeded signals that the catalog contents changed and should be
	// presented again. The slice is a private copy.
	RenderNeeded(books []models.Book)
	// OperationError reports a user-visible operation failure.
	OperationError(message string)
	// OperationSuccess reports a completed operation.
	OperationSuccess(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) RenderNeeded([]models.Book) {}
func (NopNotifier) OperationError(string)      {}
func (NopNotifier) OperationSuccess(string)    {}

// LogNotifier reports notifications through the structured logger. The HTTP
// surface uses it: clients observe state through responses, so render
// passes only need a log trace.
type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) RenderNeeded(books []models.Book) {
	n.Log.Debug("catalog rendered", zap.Int("books", len(books)))
}

func (n LogNotifier) OperationError(message string) {
	n.Log.Warn("operation failed", zap.String("reason", message))
}

func (n LogNotifier) OperationSuccess(message string) {
	n.Log.Info("operation completed", zap.String("result", message))
}
