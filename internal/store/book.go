package store

import (
	"context"

	"github.com/phrazzld/bookstore-api/internal/domain"
)

// BookStore defines the interface for book catalog persistence.
type BookStore interface {
	// List returns every book ordered by ascending ID.
	List(ctx context.Context) ([]domain.Book, error)

	// GetByID retrieves a book by ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Create inserts book and sets its store-assigned ID and timestamps.
	Create(ctx context.Context, book *domain.Book) error

	// Update applies patch to the book with the given ID and returns the stored result.
	// Returns ErrBookNotFound if the book does not exist, or a domain validation
	// error if the patched book is invalid. The existence check happens first.
	Update(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)

	// Delete removes the book with the given ID and returns it as it was.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) (*domain.Book, error)
}
