package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/api/models"
	"github.com/weatherlens/weatherlens/internal/api/response"
	"github.com/weatherlens/weatherlens/internal/history"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// HistoryHandler handles the historical lookback endpoint.
type HistoryHandler struct {
	lookback *history.Service
	logger   zerolog.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(lookback *history.Service, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{lookback: lookback, logger: logger}
}

// Lookback handles GET /v1/history.
func (h *HistoryHandler) Lookback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeDomainError(w, r, h.logger,
			weather.E(weather.KindInvalidInput, "lat and lon are required decimal numbers"))
		return
	}

	anchor := time.Now().UTC()
	if dateStr := q.Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeDomainError(w, r, h.logger,
				weather.E(weather.KindInvalidInput, "date must be in YYYY-MM-DD form"))
			return
		}
		anchor = parsed
	}

	records, err := h.lookback.Lookback(r.Context(), lat, lon, anchor)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.HistoryResponse{
		Lat:     lat,
		Lon:     lon,
		Anchor:  anchor.Format("2006-01-02"),
		Records: records,
	})
}
