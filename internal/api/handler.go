package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
// The error is translated into a response exactly once, by ErrorHandler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// AuthenticatedHandlerFunc is a HandlerFunc that also receives the caller's
// verified identity from the session guard.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, identity auth.Identity) error

// StackTracer is implemented by errors that captured a stack trace.
type StackTracer interface {
	StackTrace() string
}

// PanicError carries a recovered panic value and the stack at the panic site.
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace implements StackTracer.
func (e *PanicError) StackTrace() string {
	return string(e.Stack)
}

// ErrorHandler converts handler errors into JSON error responses.
type ErrorHandler struct {
	development bool
}

// NewErrorHandler creates an ErrorHandler. In development mode, 5xx
// responses include a stack (or the error chain) for debugging.
func NewErrorHandler(development bool) *ErrorHandler {
	return &ErrorHandler{development: development}
}

// Handle adapts fn to an http.HandlerFunc.
func (h *ErrorHandler) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.HandleError(w, r, err)
		}
	}
}

// HandleError writes the error response for err.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	if errors.Is(err, auth.ErrInvalidToken) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	if h.development && status >= http.StatusInternalServerError {
		var st StackTracer
		if errors.As(err, &st) {
			opts = append(opts, shared.WithStack(st.StackTrace()))
		} else {
			opts = append(opts, shared.WithStack(errorChain(err)))
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// NotFound responds to requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
}

// MethodNotAllowed responds to known routes requested with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

// Welcome serves the API root document.
func Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message:       "Welcome to Book Store API",
		Documentation: "/api-docs",
	})
}
