package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User       *domain.User
	Credential *auth.Credential
}

// AccountService registers users and exchanges credentials for session tokens.
type AccountService interface {
	// Register validates input, hashes the password and stores the new user.
	// Returns a domain validation error or store.ErrUsernameExists on rejection.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login verifies username and password and issues a token.
	// Unknown users and wrong passwords both yield auth.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "account_service"),
	}
}

// Register implements AccountService.Register
func (s *AccountServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.Username, input.Password, input.FirstName, input.LastName)
	if err != nil {
		log.Debug("registration rejected by validation", "error", err)
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, NewServiceError("register", "password hashing failed", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("attempted to register existing username", "username", user.Username)
			return nil, err
		}
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, store.ErrInvalidEntity) {
			return nil, err
		}
		log.Error("failed to save user", "error", err, "username", user.Username)
		return nil, NewServiceError("register", "failed to save user", err)
	}

	log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login implements AccountService.Login
func (s *AccountServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown username", "username", username)
			return nil, auth.ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", "error", err, "username", username)
		return nil, NewServiceError("login", "user lookup failed", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			// A digest bcrypt cannot parse is a data problem, not a client one
			log.Error("stored password digest is unusable", "error", err, "user_id", user.ID)
		} else {
			log.Debug("login failed: wrong password", "user_id", user.ID)
		}
		return nil, auth.ErrInvalidCredentials
	}

	cred, err := s.jwtService.GenerateToken(ctx, auth.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		log.Error("failed to issue token", "error", err, "user_id", user.ID)
		return nil, NewServiceError("login", "token generation failed", fmt.Errorf("issue token: %w", err))
	}

	log.Info("user logged in", "user_id", user.ID)
	return &LoginResult{User: user, Credential: cred}, nil
}
