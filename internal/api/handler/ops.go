package handler

import (
	"net/http"
	"time"

	"github.com/weatherlens/weatherlens/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
	}
}

type healthPayload struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	Version   string `json:"version,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, healthPayload{
		Status:    "ok",
		Time:      time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		BuildTime: h.buildTime,
	})
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The
// service holds no long-lived resources, so ready equals alive.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, healthPayload{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
