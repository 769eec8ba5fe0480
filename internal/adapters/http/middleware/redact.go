package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shreyasbhat0/todo-service/internal/platform/logging"
)

const redactedPlaceholder = "[REDACTED]"

// RedactHeaders converts request headers into slog attributes for debug
// logging. Headers named in logging.SensitiveHeaders keep their name but
// have the value replaced with a placeholder; everything else passes
// through, multi-value headers joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for name, values := range headers {
		value := strings.Join(values, ",")
		if _, secret := logging.SensitiveHeaders[strings.ToLower(name)]; secret {
			value = redactedPlaceholder
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
