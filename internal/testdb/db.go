package testdb

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/redact"
)

const setupTimeout = 30 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestPoolWithT returns a connection pool to the test database with
// the schema migrated. The pool is closed when the test completes.
func GetTestPoolWithT(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if isCIEnvironment() {
			t.Fatalf("%s must be set in CI", TestDatabaseURLEnv)
		}
		t.Skipf("%s not set - skipping integration test", TestDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		URL:      dbURL,
		MaxConns: 4,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database %s: %s",
			redact.DatabaseURL(dbURL), redact.Error(err))
	}
	t.Cleanup(pool.Close)

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, pool, postgres.MigrateUp, slog.New(slog.DiscardHandler))
	})
	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	return pool
}
