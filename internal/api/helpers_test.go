package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bookstore-api/internal/api"
	"github.com/phrazzld/bookstore-api/internal/api/middleware"
	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/mocks"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

const testSecret = "api-handler-test-secret-long-enough!"

type testEnv struct {
	router http.Handler
	users  *mocks.MockUserStore
	books  *mocks.MockBookStore
	jwt    auth.JWTService
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestEnv wires handlers over in-memory stores with the real JWT service.
func newTestEnv(t *testing.T, guardReads bool) *testEnv {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           10,
	})
	require.NoError(t, err)

	env := &testEnv{
		users: mocks.NewMockUserStore(),
		books: mocks.NewMockBookStore(),
		jwt:   jwtService,
	}

	accounts := service.NewAccountService(env.users, &mocks.MockPasswordHasher{}, jwtService, quietLogger())
	books := service.NewBookService(env.books, quietLogger())

	authHandler := api.NewAuthHandler(accounts)
	bookHandler := api.NewBookHandler(books)
	guard := middleware.NewGuard(jwtService)
	eh := api.NewErrorHandler(false)

	read := func(h api.HandlerFunc) http.HandlerFunc {
		if guardReads {
			return eh.Handle(guard.Require(h))
		}
		return eh.Handle(h)
	}

	r := chi.NewRouter()
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)
	r.Get("/", api.Welcome)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", eh.Handle(authHandler.Register))
		r.Post("/login", eh.Handle(authHandler.Login))
		r.Post("/logout", eh.Handle(authHandler.Logout))
	})
	r.Route("/books", func(r chi.Router) {
		r.Get("/", read(bookHandler.ListBooks))
		r.Post("/", eh.Handle(guard.Protect(bookHandler.CreateBook)))
		r.Get("/{id}", read(bookHandler.GetBook))
		r.Put("/{id}", eh.Handle(guard.Protect(bookHandler.UpdateBook)))
		r.Delete("/{id}", eh.Handle(guard.Protect(bookHandler.DeleteBook)))
	})
	env.router = r

	return env
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	cred, err := e.jwt.GenerateToken(context.Background(), auth.Identity{UserID: 1, Username: "alice"})
	require.NoError(t, err)
	return cred.Token
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
