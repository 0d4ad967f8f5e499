package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
)

// handleMigrations runs a goose command against the embedded migrations.
func handleMigrations(ctx context.Context, pool *pgxpool.Pool, command string, logger *slog.Logger) error {
	logger.Info("Executing migrations", "command", command)

	if err := postgres.Migrate(ctx, pool, command, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	return nil
}
