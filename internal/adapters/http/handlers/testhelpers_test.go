package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/handlers"
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
	"github.com/shreyasbhat0/todo-service/mocks"
)

const testUpdatedValue = "Updated"

// withPathID attaches a chi route context carrying the {id} URL parameter,
// standing in for the router the handler normally sits behind.
func withPathID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          1,
		Name:        "Buy groceries",
		Description: "Milk, eggs, bread",
		IsCompleted: false,
	}
}

func uint64Ptr(v uint64) *uint64 { return &v }

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	return bytes.NewReader(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshaling response %q: %v", rec.Body.String(), err)
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d (body %q)", rec.Code, want, rec.Body.String())
	}
}
