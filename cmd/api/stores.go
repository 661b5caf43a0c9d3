package main

import (
	"context"
	"fmt"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/discussion"
	"bookshelf/internal/platform/database"
	"bookshelf/internal/shelf"
	"bookshelf/internal/user"

	"go.uber.org/zap"
)

// stores bundles the repositories behind one backend.
type stores struct {
	books       catalog.Repository
	users       user.Repository
	shelves     shelf.Repository
	discussions discussion.Repository

	ping  func(ctx context.Context) error
	close func()
}

func memoryStores() *stores {
	users := user.NewMemoryRepo()
	return &stores{
		books:       catalog.NewMemoryRepo(),
		users:       users,
		shelves:     shelf.NewMemoryRepo(users),
		discussions: discussion.NewMemoryRepo(),
		ping:        func(context.Context) error { return nil },
		close:       func() {},
	}
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return memoryStores(), nil
	}

	pool, err := database.Open(ctx, cfg.DatabaseDSN, cfg.DBTimeout)
	if err != nil {
		return nil, fmt.Errorf("open database (%s): %w", config.RedactDSN(cfg.DatabaseDSN), err)
	}
	logger.Info("database connection OK", zap.String("dsn", config.RedactDSN(cfg.DatabaseDSN)))

	return &stores{
		books:       catalog.NewPostgresRepo(pool, cfg.DBTimeout),
		users:       user.NewPostgresRepo(pool, cfg.DBTimeout),
		shelves:     shelf.NewPostgresRepo(pool, cfg.DBTimeout),
		discussions: discussion.NewPostgresRepo(pool, cfg.DBTimeout),
		ping:        pool.Ping,
		close:       pool.Close,
	}, nil
}
