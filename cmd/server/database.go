package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/redact"
)

// setupAppDatabase creates the shared connection pool and verifies it can
// reach the database.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established",
		"database", redact.DatabaseURL(cfg.Database.URL),
		"max_conns", cfg.Database.MaxConns)
	return pool, nil
}
