// Package main provides the entrypoint for the WeatherLens API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/activity"
	"github.com/weatherlens/weatherlens/internal/api"
	"github.com/weatherlens/weatherlens/internal/config"
	"github.com/weatherlens/weatherlens/internal/geocode/nominatim"
	"github.com/weatherlens/weatherlens/internal/health"
	"github.com/weatherlens/weatherlens/internal/history"
	historyprovider "github.com/weatherlens/weatherlens/internal/history/openmeteo"
	"github.com/weatherlens/weatherlens/internal/telemetry"
	"github.com/weatherlens/weatherlens/internal/weather"
	"github.com/weatherlens/weatherlens/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "weatherlens-api"

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Environment).
		Msg("starting WeatherLens API")

	if cfg.OpenWeatherAPIKey == "" {
		// Not fatal: weather routes answer 500 until the key is set,
		// which keeps ops endpoints alive for diagnosis.
		log.Warn().Msg("OPENWEATHER_API_KEY is not set - weather routes will fail")
	}

	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	// Providers and services
	weatherClient := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  cfg.OpenWeatherAPIKey,
		BaseURL: cfg.OpenWeatherBaseURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  log,
	})

	geocoder := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: cfg.GeocoderBaseURL,
		Timeout: cfg.UpstreamTimeout,
	})

	resolver := weather.NewResolver(weather.ResolverConfig{
		Provider: weatherClient,
		Geocoder: geocoder,
		Logger:   log,
	})
	log.Info().Str("provider", weatherClient.Name()).Str("geocoder", geocoder.Name()).Msg("resolver initialized")

	archive := historyprovider.NewClient(historyprovider.ClientConfig{
		BaseURL: cfg.ArchiveBaseURL,
		Timeout: cfg.UpstreamTimeout,
	})
	lookback := history.NewService(history.ServiceConfig{
		Archive:        archive,
		Logger:         log,
		PerCallTimeout: cfg.UpstreamTimeout,
	})
	log.Info().Str("provider", archive.Name()).Msg("lookback service initialized")

	router := api.NewRouter(api.RouterConfig{
		Version:    Version,
		BuildTime:  BuildTime,
		Logger:     log,
		Resolver:   resolver,
		Activities: activity.NewService(log),
		Health:     health.NewService(log),
		History:    lookback,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
