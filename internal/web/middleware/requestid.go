package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"apptrack/internal/logger"
)

// RequestID attaches a correlation id to each request context and logs the
// request once it completes.
func RequestID(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequestID(r.Context(), uuid.New().String())

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			logger.FromContext(ctx, base).Info("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}
