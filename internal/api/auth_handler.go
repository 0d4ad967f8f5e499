package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/platform/metrics"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accounts service.AccountService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return decodeError(err)
	}
	if err := shared.ValidateRequest(&req); err != nil {
		return validationError(err)
	}

	user, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: "User has been created successfully",
		User:    userToResponse(user),
	})
	return nil
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return decodeError(err)
	}
	if err := shared.ValidateRequest(&req); err != nil {
		return validationError(err)
	}

	result, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		metrics.RecordLogin(metrics.OutcomeFailure)
		return err
	}
	metrics.RecordLogin(metrics.OutcomeSuccess)

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message:   "Login successful",
		Token:     result.Credential.Token,
		ExpiresAt: result.Credential.ExpiresAt.UTC().Format(time.RFC3339),
	})
	return nil
}

// Logout handles the /auth/logout endpoint. Sessions are stateless, so the
// client discards its token and nothing is revoked server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithMessage(w, r, http.StatusOK, "Logout successful")
	return nil
}
