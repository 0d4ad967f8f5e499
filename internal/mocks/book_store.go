package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
// The default implementation is an in-memory catalog with sequential IDs.
type MockBookStore struct {
	ListFn    func(ctx context.Context) ([]domain.Book, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Book, error)
	CreateFn  func(ctx context.Context, book *domain.Book) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)
	DeleteFn  func(ctx context.Context, id int64) (*domain.Book, error)

	// Err, if set, is returned by every default method
	Err error

	Books  map[int64]*domain.Book
	NextID int64

	mu sync.Mutex
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates an empty in-memory book store.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books:  make(map[int64]*domain.Book),
		NextID: 1,
	}
}

// List implements the BookStore interface
func (m *MockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	books := make([]domain.Book, 0, len(m.Books))
	for _, b := range m.Books {
		books = append(books, *b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

// GetByID implements the BookStore interface
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	found := *b
	return &found, nil
}

// Create implements the BookStore interface
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if err := book.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	book.ID = m.NextID
	book.CreatedAt = now
	book.UpdatedAt = now
	m.NextID++

	stored := *book
	m.Books[book.ID] = &stored
	return nil
}

// Update implements the BookStore interface
func (m *MockBookStore) Update(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}

	updated := *b
	if err := patch.Apply(&updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now().UTC()
	m.Books[id] = &updated

	result := updated
	return &result, nil
}

// Delete implements the BookStore interface
func (m *MockBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	delete(m.Books, id)
	return b, nil
}
