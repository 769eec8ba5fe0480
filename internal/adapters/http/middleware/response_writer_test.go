package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseRecorder_DefaultsUntouched(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())

	if rec.wrote {
		t.Error("wrote = true before any write")
	}
	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.status, http.StatusOK)
	}
	if rec.bytes != 0 {
		t.Errorf("bytes = %d, want 0", rec.bytes)
	}
}

func TestResponseRecorder_CapturesStatus(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	rec.WriteHeader(http.StatusCreated)

	if !rec.wrote {
		t.Error("wrote = false after WriteHeader")
	}
	if rec.status != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.status, http.StatusCreated)
	}
	if inner.Code != http.StatusCreated {
		t.Errorf("underlying status = %d, want %d", inner.Code, http.StatusCreated)
	}
}

func TestResponseRecorder_FirstStatusWins(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	rec.WriteHeader(http.StatusAccepted)
	rec.WriteHeader(http.StatusInternalServerError)

	if rec.status != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.status, http.StatusAccepted)
	}
}

func TestResponseRecorder_ImplicitOKOnWrite(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())

	if _, err := rec.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !rec.wrote {
		t.Error("wrote = false after Write")
	}
	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.status, http.StatusOK)
	}
}

func TestResponseRecorder_CountsBytes(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	_, _ = rec.Write([]byte("hello "))
	_, _ = rec.Write([]byte("world"))

	if rec.bytes != int64(len("hello world")) {
		t.Errorf("bytes = %d, want %d", rec.bytes, len("hello world"))
	}
	if inner.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", inner.Body.String(), "hello world")
	}
}

func TestResponseRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	if rec.Unwrap() != inner {
		t.Error("Unwrap did not return the underlying writer")
	}
}
