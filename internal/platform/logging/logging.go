// Package logging builds the service's structured loggers and carries them
// through request contexts.
//
// Construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The HTTP middleware stores a request-scoped logger (request_id and
// correlation_id attached) via WithLogger; application code retrieves it
// with FromContext. Error logs carry the operation name, the entity ids
// involved, and the full chain under "error":
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to fetch todo",
//	    slog.String("operation", "GetTodo"),
//	    slog.Uint64("id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler built here scrubs credential-shaped values through masq
// before they reach the sink.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New builds a *slog.Logger writing to w. Level is one of debug, info, warn,
// error; anything unrecognized means info. Format selects "text" or JSON
// output, defaulting to JSON. At debug level the handler also records source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := levelFrom(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when none
// is stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func levelFrom(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
