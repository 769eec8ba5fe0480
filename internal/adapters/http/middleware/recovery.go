package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
)

// errPanic is the error surfaced to clients when a handler panics. The panic
// value itself stays in the logs.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that converts handler panics into 500
// responses. The panic value and stack are logged; if the handler already
// started writing a response, the connection is left as-is rather than
// corrupted with a second status line.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rec.wrote {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
