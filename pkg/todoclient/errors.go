package todoclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sentinel errors for matching with errors.Is. Every error returned by a
// typed operation that stems from an API error response wraps one of these.
var (
	// ErrNotFound indicates the requested todo does not exist (HTTP 404).
	ErrNotFound = errors.New("todo not found")

	// ErrInvalidArgument indicates the service rejected the request payload
	// or parameters (HTTP 400/422).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable indicates the service failed to answer (HTTP 5xx after
	// retries were exhausted).
	ErrUnavailable = errors.New("service unavailable")
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// APIError carries the details of an error response from the todo service.
// It unwraps to one of the package sentinels so callers can branch with
// errors.Is while still having access to the status code and, for validation
// failures, the per-field messages.
type APIError struct {
	// StatusCode is the HTTP status of the error response.
	StatusCode int

	// Detail is the human-readable explanation from the problem+json body,
	// or the status text when the body carried none.
	Detail string

	// Fields maps field names to validation messages for HTTP 400/422
	// responses with field-level errors. Nil otherwise.
	Fields map[string]string

	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Detail, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// problemDetail represents an RFC 9457 Problem Details response from the
// todo service.
type problemDetail struct {
	Detail string       `json:"detail"`
	Errors []fieldError `json:"errors"`
}

// fieldError represents a single field-level error within a problem+json
// response.
type fieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// translateError maps an HTTP error response to an *APIError wrapping the
// matching sentinel. It parses the response body as RFC 9457 when the content
// type is application/problem+json, using the detail field for context.
func translateError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: detail}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		apiErr.err = ErrNotFound

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		apiErr.Fields = toFieldMap(pd.Errors)
		apiErr.err = ErrInvalidArgument

	case resp.StatusCode >= http.StatusInternalServerError:
		apiErr.err = ErrUnavailable
	}

	return apiErr
}

// parseProblemDetail attempts to read and parse an RFC 9457 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toFieldMap converts problem+json error details to a map keyed by field
// name, stripping the "body." prefix from each location.
func toFieldMap(details []fieldError) map[string]string {
	if len(details) == 0 {
		return nil
	}
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return fields
}
