// Package nominatim provides a client for the OpenStreetMap Nominatim
// search API, used as the resolver's geocoding fallback.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weatherlens/weatherlens/internal/geocode"
	"github.com/weatherlens/weatherlens/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "nominatim"

	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// userAgent is required by the Nominatim usage policy.
	userAgent = "weatherlens/1.0"
)

// ClientConfig holds configuration for the Nominatim client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// Limit caps the number of candidates requested (default: 3).
	Limit int

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// HTTPClient overrides the HTTP client.
	HTTPClient *resilience.Client
}

// Client is a Nominatim search client.
type Client struct {
	baseURL    string
	limit      int
	httpClient *resilience.Client
}

// NewClient creates a new Nominatim client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := cfg.Limit
	if limit == 0 {
		limit = 3
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
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		limit:      limit,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// Search returns candidates for a free-text place name. Latitude and
// longitude stay in their decimal-string wire form; the caller decides
// whether they are usable.
func (c *Client) Search(ctx context.Context, name string) ([]geocode.Candidate, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", fmt.Sprintf("%d", c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	candidates := make([]geocode.Candidate, 0, len(payload))
	for _, r := range payload {
		candidates = append(candidates, geocode.Candidate{
			DisplayName: r.DisplayName,
			Lat:         r.Lat,
			Lon:         r.Lon,
		})
	}
	return candidates, nil
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
