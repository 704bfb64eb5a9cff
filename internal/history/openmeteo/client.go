// Package openmeteo provides a client for the Open-Meteo historical
// archive API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/weatherlens/weatherlens/internal/history"
	"github.com/weatherlens/weatherlens/internal/provider/resilience"
	"github.com/weatherlens/weatherlens/internal/weather"
)

const (
	// ProviderName identifies this archive provider.
	ProviderName = "openmeteo-archive"

	// DefaultBaseURL is the Open-Meteo archive API base URL.
	DefaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"
)

// ClientConfig holds configuration for the archive client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional).
	BaseURL string

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// HTTPClient overrides the HTTP client.
	HTTPClient *resilience.Client
}

// Client is an Open-Meteo archive client.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
}

// NewClient creates a new archive client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		if cfg.Timeout != 0 {
			clientCfg.Timeout = cfg.Timeout
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// Day fetches the archive measurements for a single calendar day.
// The archive answers with parallel daily arrays; null elements are
// carried through as nil measurements rather than failing the day.
func (c *Client) Day(ctx context.Context, lat, lon float64, date string) (*history.DaySummary, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.6f", lat))
	q.Set("longitude", fmt.Sprintf("%.6f", lon))
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, weather.Wrap(weather.KindUnexpected, "an unexpected error occurred", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode)
	}

	var payload archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, weather.Wrap(weather.KindMalformedUpstream, "archive provider returned an unreadable response", err)
	}

	d := payload.Daily
	if d == nil || len(d.Time) == 0 || len(d.TempMax) == 0 || len(d.TempMin) == 0 || len(d.Precipitation) == 0 {
		return nil, weather.E(weather.KindMalformedUpstream, "archive provider returned incomplete data")
	}

	return &history.DaySummary{
		Date:            d.Time[0],
		MaxTempC:        d.TempMax[0],
		MinTempC:        d.TempMin[0],
		PrecipitationMM: d.Precipitation[0],
	}, nil
}

func classifyStatus(status int) *weather.Error {
	switch status {
	case http.StatusTooManyRequests:
		return weather.E(weather.KindUpstreamRateLimited, "archive provider rate limit exceeded")
	default:
		return weather.E(weather.KindUnexpected, fmt.Sprintf("archive provider error: status %d", status))
	}
}

func classifyTransport(err error) *weather.Error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return weather.Wrap(weather.KindUpstreamTimeout, "the archive provider timed out", err)
	case errors.As(err, &nerr) && nerr.Timeout():
		return weather.Wrap(weather.KindUpstreamTimeout, "the archive provider timed out", err)
	default:
		return weather.Wrap(weather.KindUpstreamUnreachable, "could not reach the archive provider", err)
	}
}

// Archive API response: parallel arrays, one element per requested
// day. Elements are pointers because the archive returns null for
// days it has no data for.
type archiveResponse struct {
	Daily *struct {
		Time          []string   `json:"time"`
		TempMax       []*float64 `json:"temperature_2m_max"`
		TempMin       []*float64 `json:"temperature_2m_min"`
		Precipitation []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
