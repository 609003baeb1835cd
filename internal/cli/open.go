// Package cli parses the command line and wires commands to the task store.
package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todo/internal/backend/filestore"
	"todo/internal/backend/sqlitestore"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/storage"
)

// OpenService opens the storage backend selected by cfg.Store and returns a
// service over it. The caller must Close the service.
func OpenService(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Service, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("opened store", zap.String("backend", cfg.Store), zap.String("dir", cfg.Dir))
	return service.New(store, service.WithLogger(log)), nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	switch cfg.Store {
	case config.StoreFile, "":
		return filestore.New(cfg.StorePath())
	case config.StoreSQLite:
		return sqlitestore.Open(ctx, cfg.DBPath())
	default:
		return nil, fmt.Errorf("unknown store: %q", cfg.Store)
	}
}
