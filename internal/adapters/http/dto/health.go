package dto

import "net/http"

// Status strings reported by the health endpoints.
const (
	HealthStatusOK       = "ok"
	HealthStatusReady    = "ready"
	HealthStatusNotReady = "not_ready"
)

// HealthResponse is the body served by the liveness and readiness endpoints.
// Checks holds one entry per registered checker, either "ok" or the failure
// text, and is omitted when there are none.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewReadinessResponse folds per-checker results into a readiness body plus
// the HTTP status to serve it with. A single failing check flips the whole
// response to not_ready and 503.
func NewReadinessResponse(results map[string]error) (HealthResponse, int) {
	resp := HealthResponse{
		Status: HealthStatusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthStatusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = HealthStatusOK
	}

	return resp, code
}
