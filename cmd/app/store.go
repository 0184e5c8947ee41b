package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TextMaple_Go/internal/config"
	"github.com/osse101/TextMaple_Go/internal/database"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/persistence"
	"github.com/osse101/TextMaple_Go/internal/savestore"
	"github.com/osse101/TextMaple_Go/migrations"
)

// openStore builds the configured save backend. The pool is nil for the file backend.
func openStore(ctx context.Context, cfg *config.Config) (persistence.Store, *pgxpool.Pool, error) {
	switch cfg.SaveBackend {
	case config.BackendFile:
		return savestore.NewFileStore(cfg.SaveDir), nil, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return savestore.NewPostgresStore(pool, cfg.SaveCacheSize, cfg.SaveCacheTTL), pool, nil
	}
	return nil, nil, fmt.Errorf(savestore.ErrMsgUnknownBackendFmt, cfg.SaveBackend, domain.ErrInvalidInput)
}
