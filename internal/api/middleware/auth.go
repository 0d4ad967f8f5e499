package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/api"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/platform/metrics"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// Guard rejection reasons, used as metric labels.
const (
	reasonMissing = "missing"
	reasonInvalid = "invalid"
	reasonExpired = "expired"
)

// Guard authenticates requests carrying a bearer token.
// It holds no request state and performs no database lookup.
type Guard struct {
	jwtService auth.JWTService
}

// NewGuard creates a new Guard with the given dependencies.
func NewGuard(jwtService auth.JWTService) *Guard {
	return &Guard{jwtService: jwtService}
}

// Authenticate verifies the Authorization header of r.
//
// It returns auth.ErrMissingToken when the header is absent or does not use
// the Bearer scheme, auth.ErrExpiredToken when the token has expired, and
// auth.ErrInvalidToken for any other verification failure.
func (g *Guard) Authenticate(r *http.Request) (auth.Identity, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return auth.Identity{}, g.reject(r, reasonMissing, auth.ErrMissingToken)
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return auth.Identity{}, g.reject(r, reasonInvalid, auth.ErrInvalidToken)
	}

	claims, err := g.jwtService.ValidateToken(r.Context(), token)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrExpiredToken):
		return auth.Identity{}, g.reject(r, reasonExpired, err)
	case errors.Is(err, auth.ErrInvalidToken):
		return auth.Identity{}, g.reject(r, reasonInvalid, err)
	default:
		return auth.Identity{}, g.reject(r, reasonInvalid, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err))
	}

	return claims.Identity(), nil
}

// Protect runs the guard before next. On failure next is never invoked and
// the authentication error is returned for the error handler to render as 401.
func (g *Guard) Protect(next api.AuthenticatedHandlerFunc) api.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		identity, err := g.Authenticate(r)
		if err != nil {
			return err
		}

		log := logger.FromContext(r.Context()).With("user_id", identity.UserID)
		r = r.WithContext(logger.WithLogger(r.Context(), log))

		return next(w, r, identity)
	}
}

// Require is Protect for handlers that do not use the identity.
func (g *Guard) Require(next api.HandlerFunc) api.HandlerFunc {
	return g.Protect(func(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
		return next(w, r)
	})
}

func (g *Guard) reject(r *http.Request, reason string, err error) error {
	metrics.RecordAuthFailure(reason)
	logger.FromContext(r.Context()).Debug("request rejected by session guard",
		"reason", reason,
		"path", r.URL.Path)
	return err
}
