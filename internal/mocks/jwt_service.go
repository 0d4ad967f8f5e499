package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, identity auth.Identity) (*auth.Credential, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	ExpiresAt   time.Time
	Err         error
	ValidateErr error
	Claims      *auth.Claims

	// LastIdentity records the identity passed to the latest GenerateToken call
	LastIdentity auth.Identity
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	identity auth.Identity,
) (*auth.Credential, error) {
	m.LastIdentity = identity
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, identity)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Credential{Token: m.Token, ExpiresAt: m.ExpiresAt}, nil
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
