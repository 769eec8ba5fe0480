package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/middleware"
	"github.com/shreyasbhat0/todo-service/internal/platform/logging"
)

func TestLogging_EmitsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/todos/7", http.NoBody))

	logged := buf.String()
	for _, want := range []string{"request started", "request completed", "method=DELETE", "path=/todos/7"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log missing %q: %s", want, logged)
		}
	}
}

func TestLogging_ReportsStatusAndBytes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":0}`))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/todos", http.NoBody))

	logged := buf.String()
	if !strings.Contains(logged, "status=201") {
		t.Errorf("log missing status: %s", logged)
	}
	if !strings.Contains(logged, "bytes=8") {
		t.Errorf("log missing byte count: %s", logged)
	}
	if !strings.Contains(logged, "duration=") {
		t.Errorf("log missing duration: %s", logged)
	}
}

func TestLogging_CarriesRequestIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)
	handler := chain(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	req.Header.Set("X-Correlation-ID", "corr-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	if !strings.Contains(logged, "request_id=req-42") {
		t.Errorf("log missing request id: %s", logged)
	}
	if !strings.Contains(logged, "correlation_id=corr-42") {
		t.Errorf("log missing correlation id: %s", logged)
	}
}

func TestLogging_StoresScopedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	logged := buf.String()
	if !strings.Contains(logged, "inside handler") {
		t.Errorf("handler log did not reach the request logger: %s", logged)
	}
	if !strings.Contains(logged, "request_id=") {
		t.Errorf("handler log missing request id field: %s", logged)
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer s3cr3t")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	if !strings.Contains(logged, "request headers") {
		t.Errorf("log missing debug header line: %s", logged)
	}
	if strings.Contains(logged, "s3cr3t") {
		t.Errorf("credential leaked into log: %s", logged)
	}
	if !strings.Contains(logged, "[REDACTED]") {
		t.Errorf("log missing redaction placeholder: %s", logged)
	}
	if !strings.Contains(logged, "application/json") {
		t.Errorf("log missing plain header value: %s", logged)
	}
}
