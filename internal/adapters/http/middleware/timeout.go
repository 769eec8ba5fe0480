package middleware

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds how long a handler may run. The
// request context carries the deadline so downstream work can bail out
// early; if the handler still hasn't finished when the deadline passes, the
// client gets a 504 and the handler's eventual output is discarded.
//
// The handler runs against a buffered writer in its own goroutine, so the
// real ResponseWriter is touched by exactly one select arm: done flushes the
// buffer, timeout writes the 504.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedWriter{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				buf.flush()
			case <-ctx.Done():
				writeTimeoutResponse(w, r)
			}
		})
	}
}

// writeTimeoutResponse writes the problem document for a request that
// exceeded its deadline.
func writeTimeoutResponse(w http.ResponseWriter, r *http.Request) {
	resp := dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusGatewayTimeout),
		Status:   http.StatusGatewayTimeout,
		Detail:   "request timed out",
		Instance: r.RequestURI,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w).Encode(resp)
}

// bufferedWriter holds the handler's response in memory until the deadline
// race is settled. The mutex covers the handler goroutine writing while the
// serving goroutine decides the outcome.
type bufferedWriter struct {
	dst http.ResponseWriter

	mu     sync.Mutex
	header http.Header
	body   []byte
	status int
	wrote  bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.header == nil {
		b.header = make(http.Header)
	}
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.wrote {
		return
	}
	b.status = code
	b.wrote = true
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.wrote {
		b.status = http.StatusOK
		b.wrote = true
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// flush replays the buffered response onto the real writer. Only called once
// the handler goroutine has finished.
func (b *bufferedWriter) flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(b.dst.Header(), b.header)
	if b.wrote {
		b.dst.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = b.dst.Write(b.body)
	}
}
