package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// Both cases share one error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
