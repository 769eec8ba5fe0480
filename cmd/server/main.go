// Package main is the service entry point. It assembles the dependency graph
// with samber/do v2, runs the HTTP server, and drains everything cleanly on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/shreyasbhat0/todo-service/internal/adapters/http"
	"github.com/shreyasbhat0/todo-service/internal/adapters/http/handlers"
	"github.com/shreyasbhat0/todo-service/internal/adapters/http/middleware"

	"github.com/shreyasbhat0/todo-service/internal/app"
	"github.com/shreyasbhat0/todo-service/internal/platform/config"
	"github.com/shreyasbhat0/todo-service/internal/platform/health"
	"github.com/shreyasbhat0/todo-service/internal/platform/logging"
	"github.com/shreyasbhat0/todo-service/internal/platform/telemetry"
	"github.com/shreyasbhat0/todo-service/internal/ports"
	"github.com/shreyasbhat0/todo-service/internal/store"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerProviders(injector)

	// Invoking the server wires the full graph eagerly.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// The store doubles as a readiness check once the graph is built.
	do.MustInvoke[ports.HealthRegistry](injector).Register(do.MustInvoke[*store.Store](injector))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	flushCtx, flushCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer flushCancel()
	if err := otel.Shutdown(flushCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelStack bundles the OpenTelemetry provider lifecycle. Every field is nil
// when telemetry is disabled.
type otelStack struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelStack) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelStack, error) {
	if !cfg.Telemetry.Enabled {
		return &otelStack{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelStack{tracer: tp, meter: mp, metrics: metrics}, nil
}

// registerProviders declares every lazily-built dependency. Config, logger,
// and metrics are provided as values before this runs; each constructor
// resolves what it needs from the container.
func registerProviders(injector do.Injector) {
	do.Provide(injector, newStore)
	do.Provide(injector, newTodoService)
	do.Provide(injector, newHealthRegistry)
	do.Provide(injector, newTodoHandler)
	do.Provide(injector, newHealthHandler)
	do.Provide(injector, newRouter)
	do.Provide(injector, newServer)
}

func newStore(_ do.Injector) (*store.Store, error) {
	return store.New(), nil
}

func newTodoService(i do.Injector) (ports.TodoService, error) {
	return app.NewTodoService(
		do.MustInvoke[*store.Store](i),
		do.MustInvoke[*slog.Logger](i),
		do.MustInvoke[*telemetry.Metrics](i),
	), nil
}

func newHealthRegistry(_ do.Injector) (ports.HealthRegistry, error) {
	return health.New(), nil
}

func newTodoHandler(i do.Injector) (*handlers.TodoHandler, error) {
	return handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)), nil
}

func newHealthHandler(i do.Injector) (*handlers.HealthHandler, error) {
	return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
}

func newRouter(i do.Injector) (nethttp.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	metrics := do.MustInvoke[*telemetry.Metrics](i)

	return adapthttp.NewRouter(
		do.MustInvoke[*handlers.TodoHandler](i),
		do.MustInvoke[*handlers.HealthHandler](i),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(metrics),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.WriteTimeout),
	), nil
}

func newServer(i do.Injector) (*adapthttp.Server, error) {
	return adapthttp.NewServer(
		do.MustInvoke[*config.Config](i).Server,
		do.MustInvoke[nethttp.Handler](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}
