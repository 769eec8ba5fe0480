package todoclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// jitterFraction spreads each backoff delay by ±25% so synchronized clients
// drift apart.
const jitterFraction = 0.25

// doWithRetry runs the request until a non-retryable outcome or the attempt
// budget is spent. The request body is buffered up front so every attempt
// replays the same payload.
//
// A response carrying a retryable status on the final attempt is returned
// alongside the error, body still open, so the caller can inspect it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts <= 0 {
		return nil, fmt.Errorf("todoclient: MaxAttempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	rewind, err := replayableBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := range c.retry.MaxAttempts {
		if attempt > 0 {
			if err := c.waitBeforeRetry(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		rewind()

		resp, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			if !retryableError(err) {
				return nil, err
			}
			lastErr = err
		case retryableStatus(resp.StatusCode):
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, serviceName)
			if attempt == c.retry.MaxAttempts-1 {
				return resp, lastErr
			}
			drain(resp)
		default:
			return resp, nil
		}
	}

	return nil, lastErr
}

// replayableBody buffers the request body and returns a rewind function that
// installs a fresh reader over the buffered bytes. Bodyless requests get a
// no-op rewind.
func replayableBody(req *http.Request) (func(), error) {
	if req.Body == nil {
		return func() {}, nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return func() {
		req.Body = io.NopCloser(bytes.NewReader(buf))
		req.ContentLength = int64(len(buf))
	}, nil
}

// drain discards the rest of a response body and closes it so the transport
// can reuse the connection for the next attempt.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitBeforeRetry sleeps out the backoff ahead of the given attempt, logging
// the retry at warn level. Context cancellation cuts the wait short.
func (c *Client) waitBeforeRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	c.logger.WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "todoclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff computes the delay ahead of the given retry attempt (1-indexed):
// exponential growth from InitialInterval, capped at MaxInterval, then
// jittered by ±jitterFraction.
func backoff(attempt int, opts RetryOptions) time.Duration {
	delay := float64(opts.InitialInterval) * math.Pow(opts.Multiplier, float64(attempt-1))
	delay = min(delay, float64(opts.MaxInterval))

	jitter := delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay+jitter, 0))
}

// retryableError reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry are final; everything else, network
// failures included, gets retried.
func retryableError(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether the status code invites another attempt:
// 429 or any 5xx.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
