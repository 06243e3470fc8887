package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/chessacademy-server/internal/health"
)

type HealthService interface {
	CheckHealth(ctx context.Context) health.Report
}

type Health struct {
	healthService HealthService
}

func NewHealth(healthService HealthService) *Health {
	return &Health{healthService: healthService}
}

type healthResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Version   string                  `json:"version,omitempty"`
	Checks    map[string]health.Check `json:"checks,omitempty"`
}

// Check handles GET /api/health. It answers 503 when the store is unreachable.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	report := h.healthService.CheckHealth(r.Context())

	resp := healthResponse{
		Status:    "ok",
		Timestamp: report.Timestamp,
		Version:   report.Version,
		Checks:    report.Checks,
	}
	code := http.StatusOK
	if !report.Healthy() {
		resp.Status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
