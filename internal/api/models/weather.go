// Package models defines the API request and response payloads.
package models

import (
	"github.com/weatherlens/weatherlens/internal/activity"
	"github.com/weatherlens/weatherlens/internal/health"
	"github.com/weatherlens/weatherlens/internal/history"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// SnapshotResponse is the current-weather payload.
type SnapshotResponse struct {
	City          string  `json:"city"`
	TemperatureC  float64 `json:"temperature_c"`
	FeelsLikeC    float64 `json:"feels_like_c"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeedMS   float64 `json:"wind_speed_ms"`
	WindSpeedKMH  float64 `json:"wind_speed_kmh"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	ConditionCode int     `json:"condition_code"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

// NewSnapshotResponse converts a domain snapshot to the API payload.
func NewSnapshotResponse(s *weather.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		City:          s.Name,
		TemperatureC:  s.TemperatureC,
		FeelsLikeC:    s.FeelsLikeC,
		Humidity:      s.Humidity,
		Pressure:      s.Pressure,
		WindSpeedMS:   s.WindSpeedMS,
		WindSpeedKMH:  s.WindSpeedKMH(),
		Condition:     string(s.Condition),
		Description:   s.Description,
		ConditionCode: s.ConditionCode,
		Lat:           s.Lat,
		Lon:           s.Lon,
	}
}

// ActivitiesResponse pairs the snapshot with per-activity verdicts.
type ActivitiesResponse struct {
	Weather    SnapshotResponse      `json:"weather"`
	Activities []activity.Assessment `json:"activities"`
}

// HealthResponse pairs the snapshot with triggered advisories.
type HealthResponse struct {
	Weather    SnapshotResponse `json:"weather"`
	Advisories []health.Advisory `json:"advisories"`
}

// HistoryResponse carries the lookback records for a coordinate/date.
type HistoryResponse struct {
	Lat     float64             `json:"lat"`
	Lon     float64             `json:"lon"`
	Anchor  string              `json:"anchor_date"`
	Records []history.DayRecord `json:"records"`
}
