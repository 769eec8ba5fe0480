package middleware

import "net/http"

// responseRecorder wraps http.ResponseWriter and remembers what the handler
// sent: the status code and the number of body bytes. Recovery uses it to
// tell whether a response is already underway; otel and logging read the
// outcome after the handler returns.
type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int64
	wrote  bool
}

func record(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and drops the rest, mirroring
// net/http's "superfluous WriteHeader" handling without the log noise.
func (rec *responseRecorder) WriteHeader(code int) {
	if rec.wrote {
		return
	}
	rec.status = code
	rec.wrote = true
	rec.ResponseWriter.WriteHeader(code)
}

// Write counts body bytes. A write without a prior WriteHeader locks in the
// implicit 200.
func (rec *responseRecorder) Write(b []byte) (int, error) {
	if !rec.wrote {
		rec.wrote = true
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer for http.ResponseController and for
// interface upgrades (http.Flusher, http.Hijacker).
func (rec *responseRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
