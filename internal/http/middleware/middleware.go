// Package middleware carries the cross-cutting HTTP concerns: request IDs,
// request logging, and request metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"nba-companion-service/internal/logging"
	"nba-companion-service/internal/metrics"
)

type contextKey struct{}

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request a UUID (or adopts the caller's) and makes
// it available on the context and the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Observe logs each request and records it on the metrics recorder. The
// path label is normalized so per-entity URLs don't explode cardinality.
func Observe(logger *slog.Logger, recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			path := normalizePath(r.URL.Path)
			recorder.RecordHTTPRequest(r.Method, path, rec.status, duration)
			logging.Info(logger, "http request",
				slog.String(logging.FieldMethod, r.Method),
				slog.String(logging.FieldPath, path),
				slog.Int(logging.FieldStatusCode, rec.status),
				slog.String(logging.FieldRequestID, RequestIDFromContext(r.Context())),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			)
		})
	}
}

// normalizePath collapses entity IDs in known routes to a placeholder.
func normalizePath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 {
		switch parts[0] {
		case "games", "teams":
			parts[1] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
