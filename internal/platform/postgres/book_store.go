package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

const bookColumns = `id, title, author, genre, price, created_at, updated_at`

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.TxBeginner
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.TxBeginner, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Genre,
		&b.Price,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// List implements store.BookStore.List.
func (s *PostgresBookStore) List(ctx context.Context) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, store.NewStoreError("book", "list", "query failed", MapError(err))
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("book", "list", "scan failed", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating book rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("book", "list", "row iteration failed", MapError(err))
	}

	return books, nil
}

// GetByID implements store.BookStore.GetByID.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := scanBook(s.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		return nil, s.mapError(ctx, "get", id, err)
	}
	return book, nil
}

// Create implements store.BookStore.Create.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO books (title, author, genre, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRow(ctx, query, book.Title, book.Author, book.Genre, book.Price).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.Error("failed to insert book", slog.String("error", err.Error()))
		return store.NewStoreError("book", "create", "insert failed", MapError(err))
	}

	log.Debug("book created", slog.Int64("book_id", book.ID))
	return nil
}

// Update implements store.BookStore.Update.
// The row is locked, patched and validated in Go, then written back in one transaction.
func (s *PostgresBookStore) Update(
	ctx context.Context,
	id int64,
	patch domain.BookPatch,
) (*domain.Book, error) {
	var updated *domain.Book

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		current, err := scanBook(tx.QueryRow(ctx,
			`SELECT `+bookColumns+` FROM books WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return s.mapError(ctx, "update", id, err)
		}

		if err := patch.Apply(current); err != nil {
			return err
		}

		query := `
			UPDATE books
			SET title = $1, author = $2, genre = $3, price = $4, updated_at = CURRENT_TIMESTAMP
			WHERE id = $5
			RETURNING ` + bookColumns
		updated, err = scanBook(tx.QueryRow(ctx, query,
			current.Title, current.Author, current.Genre, current.Price, id))
		if err != nil {
			return s.mapError(ctx, "update", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements store.BookStore.Delete.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := scanBook(s.db.QueryRow(ctx,
		`DELETE FROM books WHERE id = $1 RETURNING `+bookColumns, id))
	if err != nil {
		return nil, s.mapError(ctx, "delete", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("book deleted", slog.Int64("book_id", id))
	return book, nil
}

func (s *PostgresBookStore) mapError(ctx context.Context, op string, id int64, err error) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		log.Debug("book not found", slog.String("operation", op), slog.Int64("book_id", id))
		return store.ErrBookNotFound
	}
	log.Error("book query failed",
		slog.String("operation", op),
		slog.Int64("book_id", id),
		slog.String("error", err.Error()))
	return store.NewStoreError("book", op, "query failed", mapped)
}
