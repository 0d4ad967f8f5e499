package mocks

import (
	"context"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// TestifyMockBookStore is a mock of store.BookStore interface for use with testify/mock
type TestifyMockBookStore struct {
	mock.Mock
}

// List is a mock implementation of store.BookStore.List
func (m *TestifyMockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if books, ok := args.Get(0).([]domain.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.BookStore.GetByID
func (m *TestifyMockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if book, ok := args.Get(0).(*domain.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.BookStore.Create
func (m *TestifyMockBookStore) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

// Update is a mock implementation of store.BookStore.Update
func (m *TestifyMockBookStore) Update(
	ctx context.Context,
	id int64,
	patch domain.BookPatch,
) (*domain.Book, error) {
	args := m.Called(ctx, id, patch)
	if book, ok := args.Get(0).(*domain.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.BookStore.Delete
func (m *TestifyMockBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if book, ok := args.Get(0).(*domain.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}
