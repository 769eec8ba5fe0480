package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// Todo is a single todo record as returned by the service.
type Todo struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// TodoList is one page of todos. Count is the number of items in this page;
// Total is the number of todos stored by the service.
type TodoList struct {
	Todos []Todo `json:"todos"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

// TodoPatch describes a partial update. Nil fields are left unchanged by the
// service; set fields are applied atomically.
type TodoPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// ListOptions selects a window over the todo collection in creation order.
// Offset is a 0-based position; a nil Limit returns all remaining records.
type ListOptions struct {
	Offset uint64
	Limit  *uint64
}

// createTodoRequest is the wire shape of a create call.
type createTodoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- Todo operations ---

// CreateTodo creates a todo via POST /api/v1/todos and returns the stored
// record with its assigned id. Returns ErrInvalidArgument if the service
// rejects the payload.
func (c *Client) CreateTodo(ctx context.Context, name, description string) (*Todo, error) {
	reqBody := createTodoRequest{Name: name, Description: description}

	var created Todo
	if err := c.call(ctx, http.MethodPost, "/api/v1/todos", http.StatusCreated, reqBody, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTodo fetches a single todo by id via GET /api/v1/todos/{id}.
// Returns ErrNotFound if no record has the id.
func (c *Client) GetTodo(ctx context.Context, id uint64) (*Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d", id)

	var td Todo
	if err := c.call(ctx, http.MethodGet, path, http.StatusOK, nil, &td); err != nil {
		return nil, err
	}
	return &td, nil
}

// ListTodos fetches a page of todos in creation order via GET /api/v1/todos.
// Requesting a window past the end of the collection yields an empty page,
// not an error.
func (c *Client) ListTodos(ctx context.Context, opts ListOptions) (*TodoList, error) {
	path := "/api/v1/todos" + listQuery(opts)

	var list TodoList
	if err := c.call(ctx, http.MethodGet, path, http.StatusOK, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateTodo applies a partial update via PATCH /api/v1/todos/{id} and
// returns the record as stored afterwards. Returns ErrNotFound if no record
// has the id, or ErrInvalidArgument if the service rejects a patch field.
func (c *Client) UpdateTodo(ctx context.Context, id uint64, patch TodoPatch) (*Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d", id)

	var updated Todo
	if err := c.call(ctx, http.MethodPatch, path, http.StatusOK, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTodo removes a todo via DELETE /api/v1/todos/{id}. Returns
// ErrNotFound if no record has the id.
func (c *Client) DeleteTodo(ctx context.Context, id uint64) error {
	path := fmt.Sprintf("/api/v1/todos/%d", id)
	return c.call(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// listQuery converts ListOptions to a URL query string (including the leading
// "?"). Returns an empty string when the options match the service defaults.
func listQuery(opts ListOptions) string {
	v := url.Values{}
	if opts.Offset > 0 {
		v.Set("offset", strconv.FormatUint(opts.Offset, 10))
	}
	if opts.Limit != nil {
		v.Set("limit", strconv.FormatUint(*opts.Limit, 10))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// --- JSON request lifecycle ---

// call executes a JSON API request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request through the
// full pipeline, validates the status code matches wantStatus, and decodes
// the response body into respBody (if non-nil). On non-matching status codes,
// the response is passed to translateError.
func (c *Client) call(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	switch method {
	case http.MethodGet:
		return c.get(ctx, path, wantStatus, respBody)
	case http.MethodPost, http.MethodPatch:
		return c.withBody(ctx, method, path, wantStatus, reqBody, respBody)
	case http.MethodDelete:
		return c.delete(ctx, path, wantStatus)
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

func (c *Client) get(ctx context.Context, path string, wantStatus int, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	return c.execute(req, wantStatus, respBody)
}

func (c *Client) withBody(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.execute(req, wantStatus, respBody)
}

func (c *Client) delete(ctx context.Context, path string, wantStatus int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating DELETE request for %s: %w", path, err)
	}

	return c.execute(req, wantStatus, nil)
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request through the pipeline, checks the status code, and
// optionally decodes the response body. The body is closed on every path.
func (c *Client) execute(req *http.Request, wantStatus int, respBody any) error {
	resp, err := c.Do(req.Context(), req)
	if err != nil {
		// Do can return both resp and err when retries are exhausted on a
		// retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into an API error rather than returning the raw retry error.
		if resp != nil {
			defer c.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return translateError(resp)
			}
		}
		c.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer c.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := translateError(resp)
		c.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
