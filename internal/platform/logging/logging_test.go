package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/shreyasbhat0/todo-service/internal/platform/logging"
)

func TestNew_FormatSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"json", "json", `"msg":"hello"`},
		{"text", "text", "msg=hello"},
		{"unknown falls back to json", "xml", `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_LevelThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level       string
		debugPasses bool
		warnPasses  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"DEBUG", true, true},
		{"verbose", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(tt.level, "json", &buf)

			logger.Debug("at debug")
			if got := strings.Contains(buf.String(), "at debug"); got != tt.debugPasses {
				t.Errorf("debug record passed = %v, want %v", got, tt.debugPasses)
			}

			buf.Reset()
			logger.Warn("at warn")
			if got := strings.Contains(buf.String(), "at warn"); got != tt.warnPasses {
				t.Errorf("warn record passed = %v, want %v", got, tt.warnPasses)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("debug", "json", &buf).Debug("with source")
	if !strings.Contains(buf.String(), `"source"`) {
		t.Errorf("output = %q, want a source location at debug level", buf.String())
	}

	buf.Reset()
	logging.New("info", "json", &buf).Info("no source")
	if strings.Contains(buf.String(), `"source"`) {
		t.Errorf("output = %q, want no source location at info level", buf.String())
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("info", "json", new(bytes.Buffer))
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext returned a different logger than was stored")
	}
}

func TestFromContext_Default(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on a bare context did not return slog.Default()")
	}
}

func TestWithLogger_InnermostWins(t *testing.T) {
	t.Parallel()

	outer := logging.New("info", "json", new(bytes.Buffer))
	inner := logging.New("debug", "json", new(bytes.Buffer))

	ctx := logging.WithLogger(logging.WithLogger(context.Background(), outer), inner)

	if got := logging.FromContext(ctx); got != inner {
		t.Error("FromContext returned the outer logger, want the inner one")
	}
}

func TestNew_RedactsSensitiveFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"api key header", slog.String("x-api-key", "key-9f3b"), "key-9f3b"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"token field", slog.String("token", "tok-abc123"), "tok-abc123"},
		{"bearer value in arbitrary field", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output still carries the secret: %s", out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output missing the redaction marker: %s", out)
			}
		})
	}
}

func TestNew_LeavesPlainFieldsAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.String("user_id", "usr-123"),
		slog.String("path", "/api/v1/todos"),
	)

	out := buf.String()
	if !strings.Contains(out, "usr-123") || !strings.Contains(out, "/api/v1/todos") {
		t.Errorf("plain fields were altered: %s", out)
	}
}
