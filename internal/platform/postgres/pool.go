package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrazzld/bookstore-api/internal/config"
)

// DefaultPingTimeout bounds the connectivity check performed by NewPool.
const DefaultPingTimeout = 3 * time.Second

// NewPool builds a pgxpool from cfg and validates connectivity.
// It does NOT run migrations; see Migrate.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns >= 0 {
		pcfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := Ping(ctx, pool, DefaultPingTimeout); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Ping acquires a connection and round-trips a ping to the server within timeout.
// Errors wrap the underlying cause; callers redact before logging.
func Ping(parent context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
