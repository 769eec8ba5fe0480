package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
	"github.com/shreyasbhat0/todo-service/internal/domain"
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
)

// parseID reads the named chi URL parameter as a uint64 id.
func parseID(r *http.Request, param string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a non-negative integer"},
		}
	}
	return id, nil
}

// parseListQuery reads the offset and limit query parameters. Offset
// defaults to 0 when absent; an absent limit comes back as nil, meaning
// "through the end of the collection".
func parseListQuery(r *http.Request) (uint64, *uint64, error) {
	q := r.URL.Query()

	offsetPtr, err := queryUint(q, "offset")
	if err != nil {
		return 0, nil, err
	}
	limit, err := queryUint(q, "limit")
	if err != nil {
		return 0, nil, err
	}

	var offset uint64
	if offsetPtr != nil {
		offset = *offsetPtr
	}
	return offset, limit, nil
}

// queryUint parses the named query parameter as a uint64, returning nil
// when the parameter is not present.
func queryUint(q url.Values, name string) (*uint64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &domain.ValidationError{
			Fields: map[string]string{name: "must be a non-negative integer"},
		}
	}
	return &v, nil
}

// writeJSON renders v as JSON with the given status code. Encoding failures
// are logged rather than surfaced; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// Bodies larger than maxJSONBodyBytes (1 MiB) are rejected during decode.
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody reads the request body as JSON into dst, capped at
// maxJSONBodyBytes. A malformed or oversized body produces a 400 problem
// response; the return value reports whether decoding succeeded.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is satisfied by request DTOs that can check their own fields.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its validation,
// writing the error response itself when either step fails.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeTodoCreate produces the domain Todo from a create request body, or
// nil after writing an error response.
func decodeTodoCreate(w http.ResponseWriter, r *http.Request) *todo.Todo {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return nil
	}
	return req.ToTodo()
}

// decodeTodoUpdate produces the domain Patch from an update request body.
// The bool reports whether decoding and validation succeeded.
func decodeTodoUpdate(w http.ResponseWriter, r *http.Request) (todo.Patch, bool) {
	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return todo.Patch{}, false
	}
	return req.ToPatch(), true
}
