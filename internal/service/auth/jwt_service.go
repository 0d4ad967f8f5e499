package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT for identity, valid for the configured lifetime.
	GenerateToken(ctx context.Context, identity Identity) (*Credential, error)

	// ValidateToken verifies the signature and expiry of tokenString and extracts the claims.
	// Returns ErrExpiredToken once the expiry instant is reached, or ErrInvalidToken for
	// any other failure (bad signature, wrong algorithm, malformed token).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Identity is the authenticated user a token speaks for.
type Identity struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
}

// Credential is an issued session token with its expiry.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Claims represents the decoded contents of a valid token.
type Claims struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the identity the claims were issued for.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:    c.UserID,
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}
