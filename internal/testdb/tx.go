package testdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const txTimeout = 10 * time.Second

// WithTx runs fn inside a transaction that is always rolled back, also when
// fn panics or fails the test.
func WithTx(t *testing.T, pool *pgxpool.Pool, fn func(t *testing.T, tx pgx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}

	defer func() {
		rbErr := tx.Rollback(context.Background())
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			t.Logf("Warning: failed to rollback test transaction: %v", rbErr)
		}
	}()

	fn(t, tx)
}
