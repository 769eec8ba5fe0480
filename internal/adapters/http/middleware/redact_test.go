package middleware_test

import (
	"net/http"
	"testing"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{"authorization redacted", "Authorization", []string{"Bearer tok"}, "[REDACTED]"},
		{"proxy authorization redacted", "Proxy-Authorization", []string{"Basic dXNlcg=="}, "[REDACTED]"},
		{"cookie redacted", "Cookie", []string{"session=abc"}, "[REDACTED]"},
		{"api key redacted regardless of case", "X-API-KEY", []string{"key-1"}, "[REDACTED]"},
		{"plain header passes through", "Accept", []string{"application/json"}, "application/json"},
		{"multi-value joined", "Accept-Encoding", []string{"gzip", "br"}, "gzip,br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			for _, v := range tt.values {
				h.Add(tt.header, v)
			}

			attrs := middleware.RedactHeaders(h)
			if len(attrs) != 1 {
				t.Fatalf("got %d attrs, want 1", len(attrs))
			}
			if got := attrs[0].Value.String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("got %d attrs for empty headers, want 0", len(attrs))
	}
}
