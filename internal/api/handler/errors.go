// Package handler implements the HTTP handlers for the WeatherLens API.
package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/api/middleware"
	"github.com/weatherlens/weatherlens/internal/api/models"
	"github.com/weatherlens/weatherlens/internal/api/response"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// writeDomainError translates a domain error into an RFC7807 response.
// The full cause is logged; only the user-safe message leaves the
// server.
func writeDomainError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	kind := weather.KindOf(err)
	msg := weather.MessageOf(err)
	traceID := middleware.GetRequestID(r.Context())

	evt := log.Warn()
	if kind.HTTPStatus() >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Str("request_id", traceID).
		Str("kind", string(kind)).
		Str("path", r.URL.Path).
		Msg("request failed")

	var problem *models.Problem
	switch kind {
	case weather.KindInvalidInput:
		problem = models.NewBadRequest(traceID, msg)
	case weather.KindNotFound:
		problem = models.NewNotFound(traceID, msg)
	case weather.KindUpstreamUnauthorized:
		problem = models.NewUpstreamUnauthorized(traceID, msg)
	case weather.KindUpstreamRateLimited:
		problem = models.NewTooManyRequests(traceID, msg)
	case weather.KindUpstreamTimeout:
		problem = models.NewGatewayTimeout(traceID, msg)
	case weather.KindUpstreamUnreachable:
		problem = models.NewServiceUnavailable(traceID, msg)
	case weather.KindMissingCredential:
		problem = models.NewInternalError(traceID, msg)
	default:
		problem = models.NewInternalError(traceID, "an unexpected error occurred")
	}
	response.Problem(w, r, problem)
}
