package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/bookstore-api/internal/api"
	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/store"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized, "unsupported authorization method"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "token is invalid"},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "token has expired"},
		{"wrapped expired token", fmt.Errorf("guard: %w", auth.ErrExpiredToken), http.StatusUnauthorized, "token has expired"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusBadRequest, "Invalid username or password"},
		{"book not found", store.ErrBookNotFound, http.StatusNotFound, "Book not found"},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"username exists", store.ErrUsernameExists, http.StatusBadRequest, "Username already exists"},
		{
			"domain validation",
			domain.NewValidationError("price", "must be a positive number", domain.ErrInvalidPrice),
			http.StatusBadRequest,
			"Price must be a positive number",
		},
		{"request error", api.NewRequestError("Invalid book ID", domain.ErrInvalidID), http.StatusBadRequest, "Invalid book ID"},
		{"invalid entity", fmt.Errorf("%w: bad", store.ErrInvalidEntity), http.StatusBadRequest, "Invalid entity data"},
		{
			"service failure",
			service.NewServiceError("list books", "store failure", errors.New("connection reset")),
			http.StatusInternalServerError,
			"Internal server error",
		},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, api.MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.wantMessage, api.GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	price := -5.0
	err := shared.ValidateRequest(&api.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Price: &price})
	assert.Equal(t, "Price must be a positive number", api.SanitizeValidationError(err))

	err = shared.ValidateRequest(&api.LoginRequest{Password: "x"})
	assert.Equal(t, "Username is required", api.SanitizeValidationError(err))

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("not a validator error")))
}
