// Package openweathermap provides the current-weather provider client.
package openweathermap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/provider/resilience"
	"github.com/weatherlens/weatherlens/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key. May be empty; the resolver
	// checks HasCredential before issuing calls.
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// HTTPClient overrides the HTTP client. The default is a
	// single-attempt resilient client: the resolver's two-call budget
	// leaves no room for transport-level retries.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap current-weather client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.SingleAttemptConfig(ProviderName, cfg.Timeout))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool { return c.apiKey != "" }

// CurrentByName fetches current weather for a free-text place name.
func (c *Client) CurrentByName(ctx context.Context, name string) (*weather.Snapshot, error) {
	q := url.Values{}
	q.Set("q", name)
	return c.fetch(ctx, q)
}

// CurrentByCoords fetches current weather for a coordinate pair.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*weather.Snapshot, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.6f", lat))
	q.Set("lon", fmt.Sprintf("%.6f", lon))
	return c.fetch(ctx, q)
}

func (c *Client) fetch(ctx context.Context, q url.Values) (*weather.Snapshot, error) {
	if c.apiKey == "" {
		return nil, weather.E(weather.KindMissingCredential, "weather provider is not configured on the server")
	}

	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	reqURL := c.baseURL + "/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, weather.Wrap(weather.KindUnexpected, "an unexpected error occurred", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, weather.Wrap(weather.KindMalformedUpstream, "weather provider returned an unreadable response", err)
	}

	// The provider embeds its own status code in the body; it takes
	// precedence over the transport status when they disagree.
	status := resp.StatusCode
	if payload.Cod != 0 {
		status = int(payload.Cod)
	}
	if status != http.StatusOK {
		return nil, classifyStatus(status, payload.Message)
	}

	return c.toSnapshot(&payload)
}

// toSnapshot validates the structural completeness of the provider
// payload and converts it to the domain model. A 200 response missing
// required sections is malformed data, never an empty result.
func (c *Client) toSnapshot(payload *currentWeatherResponse) (*weather.Snapshot, error) {
	if len(payload.Weather) == 0 || payload.Main == nil || payload.Wind == nil || payload.Coord == nil {
		c.logger.Error().
			Bool("has_weather", len(payload.Weather) > 0).
			Bool("has_main", payload.Main != nil).
			Bool("has_wind", payload.Wind != nil).
			Bool("has_coord", payload.Coord != nil).
			Msg("structurally incomplete weather response")
		return nil, weather.E(weather.KindMalformedUpstream, "weather provider returned incomplete data")
	}

	return &weather.Snapshot{
		Name:          payload.Name,
		TemperatureC:  payload.Main.Temp,
		FeelsLikeC:    payload.Main.FeelsLike,
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeedMS:   payload.Wind.Speed,
		Condition:     mapCondition(payload.Weather[0].Main),
		Description:   payload.Weather[0].Description,
		ConditionCode: payload.Weather[0].ID,
		Lat:           payload.Coord.Lat,
		Lon:           payload.Coord.Lon,
	}, nil
}

// classifyStatus maps a provider status code to the error taxonomy.
func classifyStatus(status int, providerMsg string) *weather.Error {
	switch status {
	case http.StatusUnauthorized:
		return weather.E(weather.KindUpstreamUnauthorized, "weather provider rejected the server credential")
	case http.StatusNotFound:
		return weather.E(weather.KindNotFound, "location not found")
	case http.StatusTooManyRequests:
		return weather.E(weather.KindUpstreamRateLimited, "weather provider rate limit exceeded, try again shortly")
	default:
		msg := providerMsg
		if msg == "" {
			msg = fmt.Sprintf("status %d", status)
		}
		return weather.E(weather.KindUnexpected, "weather provider error: "+msg)
	}
}

// classifyTransport maps a network-level failure to the error taxonomy.
func classifyTransport(err error) *weather.Error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return weather.Wrap(weather.KindUpstreamTimeout, "the weather provider timed out", err)
	case errors.As(err, &nerr) && nerr.Timeout():
		return weather.Wrap(weather.KindUpstreamTimeout, "the weather provider timed out", err)
	default:
		return weather.Wrap(weather.KindUpstreamUnreachable, "could not reach the weather provider", err)
	}
}

// mapCondition maps the provider condition group to the closed
// domain vocabulary.
func mapCondition(owmMain string) weather.Condition {
	switch owmMain {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionClouds
	case "Rain":
		return weather.ConditionRain
	case "Drizzle":
		return weather.ConditionDrizzle
	case "Thunderstorm":
		return weather.ConditionThunderstorm
	case "Snow":
		return weather.ConditionSnow
	case "Mist":
		return weather.ConditionMist
	case "Fog":
		return weather.ConditionFog
	case "Haze", "Smoke", "Dust", "Sand", "Ash", "Squall", "Tornado":
		return weather.ConditionHaze
	default:
		return weather.ConditionUnknown
	}
}

// statusCode decodes the provider's "cod" field, which is a JSON
// number on success but a quoted string in error bodies.
type statusCode int

func (s *statusCode) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		*s = 0
		return nil
	}
	*s = statusCode(n)
	return nil
}

// OpenWeatherMap API response structure. The sub-sections the domain
// model requires are pointers so a missing section is detectable.
type currentWeatherResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Coord   *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Name string `json:"name"`
}
