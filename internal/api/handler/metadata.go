package handler

import (
	"net/http"
	"sort"

	"github.com/weatherlens/weatherlens/internal/activity"
	"github.com/weatherlens/weatherlens/internal/api/response"
	"github.com/weatherlens/weatherlens/internal/health"
)

// MetadataHandler exposes the keys of the built-in rule tables so
// clients can discover what they may ask for.
type MetadataHandler struct {
	activities *activity.Service
	health     *health.Service
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(activities *activity.Service, healthSvc *health.Service) *MetadataHandler {
	return &MetadataHandler{activities: activities, health: healthSvc}
}

type profilesPayload struct {
	Activities []string `json:"activities"`
	Concerns   []string `json:"concerns"`
}

// Profiles handles GET /v1/metadata/profiles.
func (h *MetadataHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	activities := h.activities.Keys()
	concerns := h.health.Keys()
	sort.Strings(activities)
	sort.Strings(concerns)

	response.JSON(w, r, http.StatusOK, profilesPayload{
		Activities: activities,
		Concerns:   concerns,
	})
}
