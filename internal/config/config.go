// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration. The OpenWeatherMap key is
// deliberately not validated here: its absence is surfaced per-request
// as a server misconfiguration by the resolver, not a startup crash.
type Config struct {
	// Port the HTTP server listens on.
	Port string `envconfig:"APP_PORT" default:"8080"`

	// Environment name (development, staging, production).
	Environment string `envconfig:"APP_ENV" default:"development"`

	// LogLevel for zerolog (trace, debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// OpenWeatherAPIKey is the current-weather provider credential.
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`

	// OpenWeatherBaseURL overrides the provider URL (tests, proxies).
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL"`

	// GeocoderBaseURL overrides the Nominatim URL.
	GeocoderBaseURL string `envconfig:"GEOCODER_BASE_URL"`

	// ArchiveBaseURL overrides the Open-Meteo archive URL.
	ArchiveBaseURL string `envconfig:"ARCHIVE_BASE_URL"`

	// UpstreamTimeout bounds every outbound provider call.
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`

	// OTLPEndpoint for trace export.
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`

	// TelemetryEnabled toggles OpenTelemetry export.
	TelemetryEnabled bool `envconfig:"OTEL_ENABLED" default:"false"`
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
