package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bookstore-api/internal/api"
	"github.com/phrazzld/bookstore-api/internal/api/middleware"
	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/mocks"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

const testSecret = "guard-test-secret-that-is-long-enough"

func newJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           10,
	})
	require.NoError(t, err)
	return svc
}

func issueToken(t *testing.T, svc auth.JWTService) string {
	t.Helper()
	cred, err := svc.GenerateToken(context.Background(), auth.Identity{UserID: 7, Username: "reader"})
	require.NoError(t, err)
	return cred.Token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestGuardAuthenticate(t *testing.T) {
	t.Parallel()

	svc := newJWTService(t)
	token := issueToken(t, svc)
	guard := middleware.NewGuard(svc)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "no header", header: "", wantErr: auth.ErrMissingToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: auth.ErrMissingToken},
		{name: "lowercase bearer", header: "bearer " + token, wantErr: auth.ErrMissingToken},
		{name: "prefix without space", header: "Bearer" + token, wantErr: auth.ErrMissingToken},
		{name: "empty token", header: "Bearer    ", wantErr: auth.ErrInvalidToken},
		{name: "garbage token", header: "Bearer not.a.jwt", wantErr: auth.ErrInvalidToken},
		{name: "valid token", header: "Bearer " + token},
		{name: "valid token with padding", header: "Bearer   " + token + "  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			identity, err := guard.Authenticate(req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, identity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), identity.UserID)
			assert.Equal(t, "reader", identity.Username)
		})
	}
}

func TestGuardAuthenticateExpiredToken(t *testing.T) {
	t.Parallel()

	guard := middleware.NewGuard(&mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken})
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer expired")

	_, err := guard.Authenticate(req)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestGuardAuthenticateUnexpectedError(t *testing.T) {
	t.Parallel()

	guard := middleware.NewGuard(&mocks.MockJWTService{ValidateErr: assert.AnError})
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer whatever")

	_, err := guard.Authenticate(req)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGuardProtect(t *testing.T) {
	t.Parallel()

	svc := newJWTService(t)
	token := issueToken(t, svc)
	guard := middleware.NewGuard(svc)
	errorHandler := api.NewErrorHandler(false)

	tests := []struct {
		name        string
		jwt         auth.JWTService
		header      string
		wantStatus  int
		wantMessage string
		wantCalled  bool
	}{
		{
			name:        "missing credential",
			jwt:         svc,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unsupported authorization method",
		},
		{
			name:        "invalid credential",
			jwt:         svc,
			header:      "Bearer tampered.token.value",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token is invalid",
		},
		{
			name:        "expired credential",
			jwt:         &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			header:      "Bearer expired",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token has expired",
		},
		{
			name:       "valid credential",
			jwt:        svc,
			header:     "Bearer " + token,
			wantStatus: http.StatusNoContent,
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			guard := guard
			if tc.jwt != svc {
				guard = middleware.NewGuard(tc.jwt)
			}

			called := false
			var got auth.Identity
			handler := errorHandler.Handle(guard.Protect(
				func(w http.ResponseWriter, r *http.Request, identity auth.Identity) error {
					called = true
					got = identity
					w.WriteHeader(http.StatusNoContent)
					return nil
				}))

			req := httptest.NewRequest(http.MethodPost, "/books", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, decodeMessage(t, rec))
			}
			if tc.wantCalled {
				assert.Equal(t, int64(7), got.UserID)
			}
		})
	}
}

func TestGuardRequire(t *testing.T) {
	t.Parallel()

	svc := newJWTService(t)
	guard := middleware.NewGuard(svc)
	errorHandler := api.NewErrorHandler(false)

	called := false
	handler := errorHandler.Handle(guard.Require(func(w http.ResponseWriter, r *http.Request) error {
		called = true
		w.WriteHeader(http.StatusOK)
		return nil
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, svc))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
