package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// HealthHandler serves the liveness endpoint. The service has no backing
// store, so liveness is the whole story.
type HealthHandler struct {
	version string
	clock   func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, clock func() time.Time) *HealthHandler {
	return &HealthHandler{version: version, clock: clock}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Today     string    `json:"today"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	now := h.clock().UTC()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Today:     domain.FormatDate(now),
		Timestamp: now,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
