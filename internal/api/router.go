// Package api provides the HTTP API for WeatherLens.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/activity"
	"github.com/weatherlens/weatherlens/internal/api/handler"
	"github.com/weatherlens/weatherlens/internal/api/middleware"
	"github.com/weatherlens/weatherlens/internal/health"
	"github.com/weatherlens/weatherlens/internal/history"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger

	Resolver   *weather.Resolver
	Activities *activity.Service
	Health     *health.Service
	History    *history.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	weatherHandler := handler.NewWeatherHandler(cfg.Resolver, cfg.Logger)
	advisoryHandler := handler.NewAdvisoryHandler(cfg.Resolver, cfg.Activities, cfg.Health, cfg.Logger)
	historyHandler := handler.NewHistoryHandler(cfg.History, cfg.Logger)
	metadataHandler := handler.NewMetadataHandler(cfg.Activities, cfg.Health)

	// Endpoints that fan out to upstream providers get the tighter
	// limit.
	upstreamRateLimit := middleware.RateLimitByIP(middleware.UpstreamRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/profiles", metadataHandler.Profiles)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Use(upstreamRateLimit)
			r.Get("/", weatherHandler.Current)
			r.Get("/activities", advisoryHandler.Activities)
			r.Get("/health", advisoryHandler.HealthConcerns)
		})

		r.Route("/history", func(r chi.Router) {
			r.Use(upstreamRateLimit)
			r.Get("/", historyHandler.Lookback)
		})
	})

	return r
}
