package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/bookstore-api/internal/api"
	"github.com/phrazzld/bookstore-api/internal/api/docs"
	apiMiddleware "github.com/phrazzld/bookstore-api/internal/api/middleware"
	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/platform/metrics"
	"github.com/phrazzld/bookstore-api/internal/redact"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	errorHandler := api.NewErrorHandler(app.config.Server.IsDevelopment())

	docsHandler, err := docs.NewHandler()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverer(errorHandler))
	r.Use(apiMiddleware.NewCORS(app.config.Server.CORSAllowedOrigins))
	r.Use(middleware.RequestSize(maxRequestBodyBytes))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	authHandler := api.NewAuthHandler(app.accountService)
	bookHandler := api.NewBookHandler(app.bookService)
	guard := apiMiddleware.NewGuard(app.jwtService)

	// Reads are public unless the deployment puts them behind the guard
	read := func(h api.HandlerFunc) http.HandlerFunc {
		if app.config.Auth.BooksReadRequiresAuth {
			return errorHandler.Handle(guard.Require(h))
		}
		return errorHandler.Handle(h)
	}
	write := func(h api.AuthenticatedHandlerFunc) http.HandlerFunc {
		return errorHandler.Handle(guard.Protect(h))
	}

	r.Get("/", api.Welcome)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", errorHandler.Handle(authHandler.Register))
		r.Post("/login", errorHandler.Handle(authHandler.Login))
		r.Post("/logout", errorHandler.Handle(authHandler.Logout))
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", read(bookHandler.ListBooks))
		r.Post("/", write(bookHandler.CreateBook))
		r.Get("/{id}", read(bookHandler.GetBook))
		r.Put("/{id}", write(bookHandler.UpdateBook))
		r.Delete("/{id}", write(bookHandler.DeleteBook))
	})

	r.Route("/api-docs", func(r chi.Router) {
		r.Get("/", docsHandler.JSON)
		r.Get("/openapi.json", docsHandler.JSON)
		r.Get("/openapi.yaml", docsHandler.YAML)
	})

	r.Get("/health", app.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	return r, nil
}

// handleHealth reports 200 when the database answers a ping and 503 otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.ping != nil {
		if err := app.ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Warn("health check failed", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
