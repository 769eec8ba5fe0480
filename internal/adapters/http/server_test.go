package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/shreyasbhat0/todo-service/internal/adapters/http"
	"github.com/shreyasbhat0/todo-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startServer runs s.Start in the background and returns the channel its
// result lands on, with a short pause so the listener is up before the test
// proceeds.
func startServer(s *adapthttp.Server) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()
	time.Sleep(50 * time.Millisecond)
	return errCh
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 9090}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), nil)

	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_GracefulShutdown(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	errCh := startServer(s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Start() = %v after graceful shutdown, want nil", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	errCh := startServer(s)

	// No deadline on the context; Shutdown supplies its own.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Start() = %v after graceful shutdown, want nil", err)
	}
}
