// Package todoclient provides a Go client SDK for the todo service HTTP API.
//
// Every call passes through the circuit breaker first, then the rate
// limiter, header injection, span creation, and finally the retry loop
// around the underlying HTTP round trip.
//
// Construction:
//
//	client, err := todoclient.New("http://localhost:8080", todoclient.Options{})
//
// Typed operations:
//
//	created, err := client.CreateTodo(ctx, "write docs", "outline the user guide")
//	page, err := client.ListTodos(ctx, todoclient.ListOptions{Offset: 10})
//
// Context propagation for header injection:
//
//	ctx = todoclient.WithRequestID(ctx, "req-123")
//	ctx = todoclient.WithCorrelationID(ctx, "corr-456")
package todoclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// serviceName identifies the todo service in spans, health checks, and
// retry logs.
const serviceName = "todo-service"

// Default option values applied by New for zero fields.
const (
	defaultTimeout = 30 * time.Second

	defaultRetryMaxAttempts     = 3
	defaultRetryInitialInterval = 100 * time.Millisecond
	defaultRetryMaxInterval     = 10 * time.Second
	defaultRetryMultiplier      = 2.0

	defaultBreakerMaxFailures   = 5
	defaultBreakerTimeout       = 30 * time.Second
	defaultBreakerHalfOpenLimit = 1
)

// Context key types for request metadata propagation.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context with the given request ID stored in it.
// The ID is sent as the X-Request-ID header on every outbound call.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context with the given correlation ID stored
// in it. The ID is sent as the X-Correlation-ID header on every outbound call.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RetryOptions holds the retry policy for transient failures (network errors,
// HTTP 429, and 5xx responses). Delays grow exponentially with ±25% jitter.
type RetryOptions struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// BreakerOptions holds the circuit breaker policy. The breaker opens after
// MaxFailures consecutive failures, stays open for Timeout, then admits
// HalfOpenLimit probe requests.
type BreakerOptions struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

// RateLimitOptions holds client-side rate limiting. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitOptions struct {
	RequestsPerSecond float64
	Burst             int
}

// Options configures a Client. The zero value is usable: every field falls
// back to a sensible default and rate limiting stays disabled.
type Options struct {
	Timeout        time.Duration
	Retry          RetryOptions
	CircuitBreaker BreakerOptions
	RateLimit      RateLimitOptions
	Logger         *slog.Logger
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Retry.MaxAttempts <= 0 {
		o.Retry.MaxAttempts = defaultRetryMaxAttempts
	}
	if o.Retry.InitialInterval <= 0 {
		o.Retry.InitialInterval = defaultRetryInitialInterval
	}
	if o.Retry.MaxInterval <= 0 {
		o.Retry.MaxInterval = defaultRetryMaxInterval
	}
	if o.Retry.Multiplier <= 0 {
		o.Retry.Multiplier = defaultRetryMultiplier
	}
	if o.CircuitBreaker.MaxFailures <= 0 {
		o.CircuitBreaker.MaxFailures = defaultBreakerMaxFailures
	}
	if o.CircuitBreaker.Timeout <= 0 {
		o.CircuitBreaker.Timeout = defaultBreakerTimeout
	}
	if o.CircuitBreaker.HalfOpenLimit <= 0 {
		o.CircuitBreaker.HalfOpenLimit = defaultBreakerHalfOpenLimit
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Client is an instrumented HTTP client for the todo service with circuit
// breaker, rate limiting, retry, header injection, and OpenTelemetry tracing.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[struct{}]
	limiter    *rate.Limiter // nil when rate limiting is disabled
	retry      RetryOptions
	logger     *slog.Logger
}

// New creates a Client for the todo service at baseURL (scheme and host,
// e.g. "http://localhost:8080"). Zero fields in opts fall back to defaults.
func New(baseURL string, opts Options) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("todoclient: baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	opts = opts.withDefaults()
	logger := opts.Logger

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(opts.CircuitBreaker.HalfOpenLimit),
		Timeout:     opts.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= opts.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if opts.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit.RequestsPerSecond), opts.RateLimit.Burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    baseURL,
		breaker:    cb,
		limiter:    limiter,
		retry:      opts.Retry,
		logger:     logger,
	}, nil
}

// Do executes an HTTP request through the full pipeline: breaker, rate
// limiter, header injection, span, then the retry loop around the round trip.
//
// The request's context is used for cancellation, tracing, and to extract
// Request-ID and Correlation-ID for header propagation.
//
// When the request succeeds (non-retryable status), resp is non-nil with an
// open body that the caller must close. When all retries are exhausted for a
// retryable status, both resp (with open body) and err are non-nil; the caller
// should close resp.Body. When the circuit breaker rejects or a network error
// occurs, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		// Bind span context to the request so http.Client.Do uses it for
		// cancellation, deadlines, and trace propagation.
		req = req.WithContext(spanCtx)

		var retryErr error
		resp, retryErr = c.doWithRetry(spanCtx, req)
		c.finishSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	return resp, err
}

// BaseURL returns the base URL configured for this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the identifier used when this client is registered as a
// health checker. Together with HealthCheck, this method satisfies health
// checker interfaces via structural typing.
func (c *Client) Name() string {
	return serviceName
}

// HealthCheck reports the todo service's availability from the circuit
// breaker state alone; it makes no network call. A closed breaker means
// healthy and returns nil. Half-open means the breaker is probing recovery
// and returns a degraded error. Open means requests are being rejected and
// returns a failing error.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", serviceName, state)
	}
}

// waitForRateLimit blocks until the rate limiter allows the request or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders adds Request-ID and Correlation-ID headers to the outbound
// request if present in the context.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan creates an OTEL client span for the outbound request and injects
// trace context (W3C Trace Context) into the request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("todoclient")

	spanName := fmt.Sprintf("HTTP %s %s", req.Method, serviceName)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", serviceName),
		),
	)

	// Propagate trace context into outbound request headers.
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// finishSpan records the response outcome on the span.
func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// toUint32 converts an int to uint32, clamping negatives to zero and values
// above the uint32 maximum.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
