package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/middleware"
)

// tagWriter returns middleware that writes tag before passing the request on.
func tagWriter(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(tag))
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestChain_OutsideInOrder(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(tagWriter("a"), tagWriter("b"), tagWriter("c"))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("h"))
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Body.String() != "abch" {
		t.Errorf("execution order = %q, want %q", rec.Body.String(), "abch")
	}
}

func TestChain_FullPipeline(t *testing.T) {
	t.Parallel()

	chain := middleware.Chain(
		middleware.Recovery(discardLogger()),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(discardLogger()),
		middleware.Timeout(time.Second),
	)
	handler := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("pipeline did not set X-Request-ID")
	}
	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("pipeline did not set X-Correlation-ID")
	}
}
