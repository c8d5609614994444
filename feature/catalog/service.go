package catalog

import (
	"context"

	"go.uber.org/zap"

	"shelfd/feature/catalog/models"
)

// Service exposes catalog operations to presentation surfaces. Reads come
// straight from the store; writes go through the reconciliation engine.
type Service struct {
	engine *Engine
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(engine *Engine, logger *zap.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// List returns the catalog contents in store order.
func (s *Service) List() []models.Book {
	return s.engine.Store().All()
}

// Get returns a single record by identity.
func (s *Service) Get(id int) (models.Book, error) {
	b, ok := s.engine.Store().Find(id)
	if !ok {
		return models.Book{}, ErrNotFound
	}
	return b, nil
}

// Create runs an optimistic create.
func (s *Service) Create(ctx context.Context, p models.Payload) (models.Book, error) {
	return s.engine.Create(ctx, p)
}

// Update runs an optimistic partial update.
func (s *Service) Update(ctx context.Context, id int, p models.Patch) (models.Book, error) {
	return s.engine.Update(ctx, id, p)
}

// Delete runs an optimistic delete.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.engine.Delete(ctx, id)
}

// Pull refreshes the catalog from the remote resource.
func (s *Service) Pull(ctx context.Context, limit int) (int, error) {
	return s.engine.Pull(ctx, limit)
}
