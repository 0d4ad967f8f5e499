package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// pingFunc reports whether the database is reachable.
type pingFunc func(ctx context.Context) error

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	pool *pgxpool.Pool
	ping pingFunc

	// Stores
	userStore store.UserStore
	bookStore store.BookStore

	// Services
	jwtService     auth.JWTService
	hasher         auth.PasswordHasher
	accountService service.AccountService
	bookService    service.BookService
}

// newApplication wires the Postgres-backed stores from pool into the services.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*application, error) {
	app, err := newApplicationWithStores(
		cfg,
		logger,
		postgres.NewPostgresUserStore(pool, logger),
		postgres.NewPostgresBookStore(pool, logger),
		func(ctx context.Context) error {
			return postgres.Ping(ctx, pool, postgres.DefaultPingTimeout)
		},
	)
	if err != nil {
		return nil, err
	}
	app.pool = pool
	return app, nil
}

// newApplicationWithStores builds the service graph over the given stores.
func newApplicationWithStores(
	cfg *config.Config,
	logger *slog.Logger,
	userStore store.UserStore,
	bookStore store.BookStore,
	ping pingFunc,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		ping:      ping,
		userStore: userStore,
		bookStore: bookStore,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.hasher = hasher
	logger.Debug("password hasher initialized", "bcrypt_cost", hasher.Cost())

	app.accountService = service.NewAccountService(userStore, app.hasher, app.jwtService, logger)
	app.bookService = service.NewBookService(bookStore, logger)

	logger.Info("Application initialized successfully",
		"books_read_requires_auth", cfg.Auth.BooksReadRequiresAuth)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}
	app.logger.Info("Application shutdown completed")
}
