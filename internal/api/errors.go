package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// RequestError reports request input the handler could not accept:
// an unreadable body, a failed struct validation or a bad path parameter.
// Message is safe to show to clients.
type RequestError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a RequestError.
func NewRequestError(message string, err error) *RequestError {
	return &RequestError{Message: message, Err: err}
}

// decodeError turns a DecodeJSON failure into a RequestError.
// A JSON value of the wrong type for a known field names that field.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		if typeErr.Field == "price" {
			return NewRequestError("Price must be a positive number", err)
		}
		return NewRequestError(fmt.Sprintf("Invalid %s", typeErr.Field), err)
	}
	if errors.Is(err, shared.ErrEmptyBody) {
		return NewRequestError("Request body is required", err)
	}
	return NewRequestError("Invalid request format", err)
}

// validationError turns a ValidateRequest failure into a RequestError.
func validationError(err error) error {
	return NewRequestError(SanitizeValidationError(err), err)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var reqErr *RequestError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors, including duplicate usernames and failed logins
	case errors.As(err, &reqErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		store.IsDuplicateError(err),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal server error"
	}

	var reqErr *RequestError
	var valErr *domain.ValidationError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken):
		return "unsupported authorization method"
	case errors.Is(err, auth.ErrExpiredToken):
		return "token has expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "token is invalid"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"

	// Not found errors
	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	// Bad request errors
	case errors.As(err, &reqErr):
		return reqErr.Message
	case errors.As(err, &valErr):
		return capitalize(valErr.Error())
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "Internal server error"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return capitalize(fe.Field()) + " " + getValidationTagMessage(fe.Tag())
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "gte", "gt":
		return "must be a positive number"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// errorChain renders each layer of err on its own line, outermost first.
func errorChain(err error) string {
	var b strings.Builder
	for e := err; e != nil; e = errors.Unwrap(e) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%T: %v", e, e)
	}
	return b.String()
}
