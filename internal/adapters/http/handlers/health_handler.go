package handlers

import (
	"net/http"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
	"github.com/shreyasbhat0/todo-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. A process that can answer is alive, so
// this never consults the registry.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthStatusOK})
}

// Readiness handles GET /health/ready. It runs every registered check and
// reports per-check detail; any failure turns the response into a 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, code := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()))
	writeJSON(w, code, resp)
}
