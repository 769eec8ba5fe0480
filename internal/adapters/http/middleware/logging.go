package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shreyasbhat0/todo-service/internal/platform/logging"
)

// Logging returns middleware that emits one log line when a request arrives
// and one when it completes. A child logger carrying the request and
// correlation ids is stored in the context via logging.WithLogger, so
// handlers and services inherit both fields without threading them manually.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), reqLog)

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
