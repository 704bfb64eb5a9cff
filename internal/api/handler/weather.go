package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/api/models"
	"github.com/weatherlens/weatherlens/internal/api/response"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// WeatherHandler handles current-weather endpoints.
type WeatherHandler struct {
	resolver *weather.Resolver
	logger   zerolog.Logger
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(resolver *weather.Resolver, logger zerolog.Logger) *WeatherHandler {
	return &WeatherHandler{resolver: resolver, logger: logger}
}

// Current handles GET /v1/weather.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
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

	response.JSON(w, r, http.StatusOK, models.NewSnapshotResponse(snap))
}

// parseLocationQuery builds a LocationQuery from the request's city or
// lat/lon parameters. Coordinates win when both are present.
func parseLocationQuery(r *http.Request) (weather.LocationQuery, error) {
	q := r.URL.Query()
	latStr := q.Get("lat")
	lonStr := q.Get("lon")

	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return weather.LocationQuery{}, weather.E(weather.KindInvalidInput, "lat and lon must both be decimal numbers")
		}
		return weather.CoordsQuery(lat, lon), nil
	}

	city := strings.TrimSpace(q.Get("city"))
	if city == "" {
		return weather.LocationQuery{}, weather.E(weather.KindInvalidInput, "provide a city name or a lat/lon pair")
	}
	return weather.NameQuery(city), nil
}

// splitList parses a comma-separated query parameter into trimmed,
// non-empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
