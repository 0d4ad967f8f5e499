package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/bookstore-api/internal/api"
)

// NewRecoverer returns middleware that turns a handler panic into a JSON 500
// response through errorHandler. http.ErrAbortHandler is re-panicked so
// net/http can abort the connection.
func NewRecoverer(errorHandler *api.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				errorHandler.HandleError(w, r, &api.PanicError{Value: rec, Stack: debug.Stack()})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
