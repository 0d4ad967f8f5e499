package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Password and username limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 6
	// MaxPasswordLength is bcrypt's practical input limit in bytes.
	MaxPasswordLength = 72
	MaxNameLength     = 100
)

// Common validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrInvalidUsername     = errors.New("invalid username")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrNameTooLong         = errors.New("name must be at most 100 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the bookstore.
// ID is assigned by the credential store on insert.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given credentials and profile fields.
// Surrounding whitespace is trimmed from the username and names.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, password, firstName, lastName string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:  strings.TrimSpace(username),
		Password:  password,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns a *ValidationError wrapping the specific cause.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "is required", ErrEmptyUsername)
	}
	n := utf8.RuneCountInString(u.Username)
	if n < MinUsernameLength || n > MaxUsernameLength || strings.ContainsAny(u.Username, " \t\r\n") {
		return NewValidationError("username", "must be 3-64 characters without whitespace", ErrInvalidUsername)
	}

	if utf8.RuneCountInString(u.FirstName) > MaxNameLength {
		return NewValidationError("firstname", "is too long", ErrNameTooLong)
	}
	if utf8.RuneCountInString(u.LastName) > MaxNameLength {
		return NewValidationError("lastname", "is too long", ErrNameTooLong)
	}

	// A plaintext password is present during registration; stored users carry only the hash
	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "is too short", ErrPasswordTooShort)
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "is too long", ErrPasswordTooLong)
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", "is required", ErrEmptyPassword)
	}

	return nil
}
