package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// The default implementation is an in-memory store keyed by username.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Data for default implementation
	Users              map[string]*domain.User
	LastUserID         int64
	CreateError        error
	GetByUsernameError error

	mu sync.Mutex
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	m.LastUserID++
	now := time.Now().UTC()
	user.ID = m.LastUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Password = ""

	stored := *user
	m.Users[user.Username] = &stored
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetByUsernameError != nil {
		return nil, m.GetByUsernameError
	}
	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	found := *user
	return &found, nil
}
