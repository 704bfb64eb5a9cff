package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlens/weatherlens/internal/geocode/nominatim"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Wroclaw", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Wrocław, Poland", "lat": "51.1079", "lon": "17.0385"},
			{"display_name": "Wrocław County, Poland", "lat": "51.05", "lon": "17.1"}
		]`))
	}))
	t.Cleanup(server.Close)

	client := nominatim.NewClient(nominatim.ClientConfig{BaseURL: server.URL})

	candidates, err := client.Search(context.Background(), "Wroclaw")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Wrocław, Poland", candidates[0].DisplayName)
	assert.Equal(t, "51.1079", candidates[0].Lat)
	assert.Equal(t, "17.0385", candidates[0].Lon)
}

func TestSearch_NoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := nominatim.NewClient(nominatim.ClientConfig{BaseURL: server.URL})

	candidates, err := client.Search(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := nominatim.NewClient(nominatim.ClientConfig{BaseURL: server.URL})

	_, err := client.Search(context.Background(), "Wroclaw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestSearch_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	t.Cleanup(server.Close)

	client := nominatim.NewClient(nominatim.ClientConfig{BaseURL: server.URL})

	_, err := client.Search(context.Background(), "Wroclaw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}
