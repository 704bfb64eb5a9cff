package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/activity"
	"github.com/weatherlens/weatherlens/internal/api/models"
	"github.com/weatherlens/weatherlens/internal/api/response"
	"github.com/weatherlens/weatherlens/internal/health"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// AdvisoryHandler handles the activity-suitability and health-risk
// endpoints, which resolve a snapshot and evaluate rule tables over it.
type AdvisoryHandler struct {
	resolver   *weather.Resolver
	activities *activity.Service
	health     *health.Service
	logger     zerolog.Logger
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(resolver *weather.Resolver, activities *activity.Service, healthSvc *health.Service, logger zerolog.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{
		resolver:   resolver,
		activities: activities,
		health:     healthSvc,
		logger:     logger,
	}
}

// Activities handles GET /v1/weather/activities.
func (h *AdvisoryHandler) Activities(w http.ResponseWriter, r *http.Request) {
	query, err := parseLocationQuery(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	snap, err := h.resolver.Resolve(r.Context(), query)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	assessments, err := h.activities.Assess(splitList(r.URL.Query().Get("activities")), snap)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.ActivitiesResponse{
		Weather:    models.NewSnapshotResponse(snap),
		Activities: assessments,
	})
}

// HealthConcerns handles GET /v1/weather/health.
func (h *AdvisoryHandler) HealthConcerns(w http.ResponseWriter, r *http.Request) {
	query, err := parseLocationQuery(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	snap, err := h.resolver.Resolve(r.Context(), query)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	advisories, err := h.health.Advise(splitList(r.URL.Query().Get("concerns")), snap)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.HealthResponse{
		Weather:    models.NewSnapshotResponse(snap),
		Advisories: advisories,
	})
}
