package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/shreyasbhat0/todo-service/internal/platform/config"
)

// defaultShutdownTimeout caps Shutdown when the caller's context carries no
// deadline of its own.
const defaultShutdownTimeout = 10 * time.Second

// Server runs the HTTP listener and drains it cleanly on shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer builds a Server bound to cfg's host and port with its read,
// write, and idle timeouts applied. A nil logger is replaced with a discard
// logger.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// Start serves requests until the listener closes. It blocks, returning nil
// after a graceful Shutdown and an error for anything else.
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("addr", s.srv.Addr))

	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server: %w", err)
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to the context deadline, substituting defaultShutdownTimeout when ctx has
// none.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("http server draining")
	return s.srv.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
