package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlens/weatherlens/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.False(t, cfg.TelemetryEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENWEATHER_API_KEY", "abc123")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "abc123", cfg.OpenWeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
}
