package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlens/weatherlens/internal/history/openmeteo"
	"github.com/weatherlens/weatherlens/internal/weather"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *openmeteo.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return openmeteo.NewClient(openmeteo.ClientConfig{BaseURL: server.URL})
}

func TestDay(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "51.100000", q.Get("latitude"))
		assert.Equal(t, "17.000000", q.Get("longitude"))
		assert.Equal(t, "2024-08-29", q.Get("start_date"))
		assert.Equal(t, "2024-08-29", q.Get("end_date"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_sum", q.Get("daily"))
		assert.Equal(t, "UTC", q.Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"daily": {
				"time": ["2024-08-29"],
				"temperature_2m_max": [24.7],
				"temperature_2m_min": [13.2],
				"precipitation_sum": [1.8]
			}
		}`))
	})

	day, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.NoError(t, err)

	assert.Equal(t, "2024-08-29", day.Date)
	require.NotNil(t, day.MaxTempC)
	assert.Equal(t, 24.7, *day.MaxTempC)
	require.NotNil(t, day.MinTempC)
	assert.Equal(t, 13.2, *day.MinTempC)
	require.NotNil(t, day.PrecipitationMM)
	assert.Equal(t, 1.8, *day.PrecipitationMM)
}

func TestDay_NullMeasurements(t *testing.T) {
	// The archive answers null for days it has no data for; those
	// become nil measurements, not an error.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"daily": {
				"time": ["2024-08-29"],
				"temperature_2m_max": [null],
				"temperature_2m_min": [null],
				"precipitation_sum": [null]
			}
		}`))
	})

	day, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.NoError(t, err)
	assert.Nil(t, day.MaxTempC)
	assert.Nil(t, day.MinTempC)
	assert.Nil(t, day.PrecipitationMM)
}

func TestDay_MissingDailySection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reason": "no data"}`))
	})

	_, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.Error(t, err)
	assert.Equal(t, weather.KindMalformedUpstream, weather.KindOf(err))
}

func TestDay_EmptyArrays(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"daily": {
				"time": [],
				"temperature_2m_max": [],
				"temperature_2m_min": [],
				"precipitation_sum": []
			}
		}`))
	})

	_, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.Error(t, err)
	assert.Equal(t, weather.KindMalformedUpstream, weather.KindOf(err))
}

func TestDay_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.Error(t, err)
	assert.Equal(t, weather.KindUpstreamRateLimited, weather.KindOf(err))
}

func TestDay_Unreachable(t *testing.T) {
	client := openmeteo.NewClient(openmeteo.ClientConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Day(context.Background(), 51.1, 17.0, "2024-08-29")
	require.Error(t, err)
	assert.Equal(t, weather.KindUpstreamUnreachable, weather.KindOf(err))
}
