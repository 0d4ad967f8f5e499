package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// CreateBookInput carries the fields of a new catalog entry.
type CreateBookInput struct {
	Title  string
	Author string
	Genre  *string
	Price  float64
}

// BookService provides catalog operations.
type BookService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error)

	// UpdateBook applies a partial update. A missing book is reported before
	// any validation failure of the patched result.
	UpdateBook(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)

	// DeleteBook removes a book and returns it as it was.
	DeleteBook(ctx context.Context, id int64) (*domain.Book, error)
}

// BookServiceImpl implements the BookService interface
type BookServiceImpl struct {
	bookStore store.BookStore
	logger    *slog.Logger
}

// NewBookService creates a new BookService
func NewBookService(bookStore store.BookStore, logger *slog.Logger) BookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookServiceImpl{
		bookStore: bookStore,
		logger:    logger.With("component", "book_service"),
	}
}

// ListBooks implements BookService.ListBooks
func (s *BookServiceImpl) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, s.wrap(ctx, "list books", err)
	}
	return books, nil
}

// GetBook implements BookService.GetBook
func (s *BookServiceImpl) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(ctx, "get book", err)
	}
	return book, nil
}

// CreateBook implements BookService.CreateBook
func (s *BookServiceImpl) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	book, err := domain.NewBook(input.Title, input.Author, input.Genre, input.Price)
	if err != nil {
		return nil, err
	}

	if err := s.bookStore.Create(ctx, book); err != nil {
		return nil, s.wrap(ctx, "create book", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("book created", "book_id", book.ID)
	return book, nil
}

// UpdateBook implements BookService.UpdateBook
func (s *BookServiceImpl) UpdateBook(
	ctx context.Context,
	id int64,
	patch domain.BookPatch,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if patch.IsEmpty() {
		log.Debug("empty book patch", "book_id", id)
	}

	book, err := s.bookStore.Update(ctx, id, patch)
	if err != nil {
		return nil, s.wrap(ctx, "update book", err)
	}

	log.Info("book updated", "book_id", book.ID)
	return book, nil
}

// DeleteBook implements BookService.DeleteBook
func (s *BookServiceImpl) DeleteBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookStore.Delete(ctx, id)
	if err != nil {
		return nil, s.wrap(ctx, "delete book", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("book deleted", "book_id", id)
	return book, nil
}

// wrap passes expected errors through and wraps everything else in a ServiceError.
func (s *BookServiceImpl) wrap(ctx context.Context, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, store.ErrInvalidEntity) {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("book operation failed",
		"operation", op,
		"error", err)
	return NewServiceError(op, "store failure", err)
}
