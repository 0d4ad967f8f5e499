package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bookstore-api/internal/api/middleware"
	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/platform/metrics"
)

func TestTraceMiddlewareTraceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "no inbound id", inbound: ""},
		{name: "plausible inbound id", inbound: "req-12345678", reuse: true},
		{name: "implausible inbound id", inbound: "bad id with spaces"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := middleware.NewTraceMiddleware(slog.New(slog.DiscardHandler))(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen = shared.GetTraceID(r.Context())
				}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(shared.TraceIDHeader, tc.inbound)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(shared.TraceIDHeader))
			if tc.reuse {
				assert.Equal(t, tc.inbound, seen)
			} else {
				assert.NotEqual(t, tc.inbound, seen)
			}
		})
	}
}

func TestTraceMiddlewareRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := middleware.NewTraceMiddleware(base)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusTeapot)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.TraceIDHeader, "trace-abcdef12")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"trace_id":"trace-abcdef12"`)
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"status":418`)
}

func TestTraceMiddlewareRecordsRoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(slog.New(slog.DiscardHandler)))
	r.Get("/trace-test/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/trace-test/{id}", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/trace-test/42", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
