package store

import (
	"context"

	"github.com/phrazzld/bookstore-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It is the credential store consulted at registration and login.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// HashedPassword; the plaintext Password is never persisted.
	// On success the store-assigned ID and timestamps are set on user.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
