package shared

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Request-ID"
)

// inbound trace IDs are accepted only when they look like an identifier
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// SetTraceID adds a trace ID to the context.
// If traceID is empty or not a plausible identifier, a fresh one is generated.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	if !traceIDPattern.MatchString(traceID) {
		traceID = NewTraceID()
	}
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// NewTraceID returns a random trace ID.
func NewTraceID() string {
	return uuid.NewString()
}
