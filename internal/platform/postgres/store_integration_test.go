//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/phrazzld/bookstore-api/internal/testdb"
)

func TestIntegrationBookStore(t *testing.T) {
	t.Parallel()
	pool := testdb.GetTestPoolWithT(t)

	testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
		ctx := context.Background()
		books := postgres.NewPostgresBookStore(tx, nil)

		book, err := domain.NewBook("Dune", "Frank Herbert", ptr("Science Fiction"), 9.99)
		require.NoError(t, err)
		require.NoError(t, books.Create(ctx, book))
		assert.NotZero(t, book.ID)

		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 9.99, got.Price)
		require.NotNil(t, got.Genre)
		assert.Equal(t, "Science Fiction", *got.Genre)

		updated, err := books.Update(ctx, book.ID, domain.BookPatch{Price: ptr(12.5)})
		require.NoError(t, err)
		assert.Equal(t, 12.5, updated.Price)
		assert.Equal(t, "Dune", updated.Title)

		_, err = books.Update(ctx, book.ID, domain.BookPatch{Price: ptr(-1.0)})
		assert.ErrorIs(t, err, domain.ErrValidation)

		deleted, err := books.Delete(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, book.ID, deleted.ID)

		_, err = books.GetByID(ctx, book.ID)
		assert.ErrorIs(t, err, store.ErrBookNotFound)
	})
}

func TestIntegrationUserStore(t *testing.T) {
	t.Parallel()
	pool := testdb.GetTestPoolWithT(t)

	testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)

		user, err := domain.NewUser("integration-user", "secret123", "Ada", "")
		require.NoError(t, err)
		user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuuabcdefghijklmnopqrstuvwxyz01234"
		require.NoError(t, users.Create(ctx, user))

		got, err := users.GetByUsername(ctx, "integration-user")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Empty(t, got.LastName)

		dup, err := domain.NewUser("integration-user", "secret123", "", "")
		require.NoError(t, err)
		dup.HashedPassword = user.HashedPassword
		assert.ErrorIs(t, users.Create(ctx, dup), store.ErrUsernameExists)
	})
}
