// Package main implements the entry point for the Book Store API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/redact"
)

// main is the entry point for the bookstore server.
// It initializes configuration, logging and the database pool, then either
// runs a migration command or serves HTTP until it receives a shutdown signal.
func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command and exit (up|down|status|version|reset)")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("server exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	pool, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrateCmd != "" {
		return handleMigrations(ctx, pool, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, pool, postgres.MigrateUp, logger); err != nil {
			return fmt.Errorf("failed to apply migrations on startup: %w", err)
		}
	}

	app, err := newApplication(cfg, logger, pool)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
