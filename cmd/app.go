package cmd

import (
	"context"
	"fmt"

	"shelfd/core/config"
	"shelfd/core/database"
	"shelfd/core/logger"
	"shelfd/core/snapshot"
	"shelfd/feature/catalog"
	"shelfd/feature/catalog/remote"

	"go.uber.org/zap"
)

// app bundles the runtime pieces every catalog command needs: loaded
// configuration, logger, the hydrated store and the engine wired to the
// remote gateway.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	snap   snapshot.Store
	store  *catalog.Store
	engine *catalog.Engine
}

// newApp loads configuration, opens the local database and rehydrates the
// catalog from its last snapshot. The notifier is built once the logger
// exists; a nil factory falls back to the silent notifier.
func newApp(ctx context.Context, notify func(*zap.Logger) catalog.Notifier) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	snap, err := snapshot.NewStore(db)
	if err != nil {
		return nil, err
	}

	store := catalog.NewStore(snap, cfg.Catalog.SnapshotSlot)
	if err := store.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore catalog snapshot: %w", err)
	}

	var notifier catalog.Notifier = catalog.NopNotifier{}
	if notify != nil {
		notifier = notify(l)
	}

	client := remote.NewClient(cfg.Remote)
	engine := catalog.NewEngine(store, client, notifier, cfg.Catalog, l)

	return &app{
		cfg:    cfg,
		log:    l,
		snap:   snap,
		store:  store,
		engine: engine,
	}, nil
}
