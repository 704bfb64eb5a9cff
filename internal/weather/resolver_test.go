package weather_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlens/weatherlens/internal/geocode"
	"github.com/weatherlens/weatherlens/internal/weather"
)

// mockProvider is a scriptable weather provider.
type mockProvider struct {
	hasCredential bool

	byNameSnap *weather.Snapshot
	byNameErr  error

	byCoordsSnap *weather.Snapshot
	byCoordsErr  error

	nameCalls   int
	coordsCalls int
	lastLat     float64
	lastLon     float64
}

func (m *mockProvider) Name() string        { return "mock" }
func (m *mockProvider) HasCredential() bool { return m.hasCredential }

func (m *mockProvider) CurrentByName(_ context.Context, _ string) (*weather.Snapshot, error) {
	m.nameCalls++
	return m.byNameSnap, m.byNameErr
}

func (m *mockProvider) CurrentByCoords(_ context.Context, lat, lon float64) (*weather.Snapshot, error) {
	m.coordsCalls++
	m.lastLat, m.lastLon = lat, lon
	return m.byCoordsSnap, m.byCoordsErr
}

// mockGeocoder is a scriptable geocoder.
type mockGeocoder struct {
	candidates []geocode.Candidate
	err        error
	calls      int
}

func (m *mockGeocoder) Name() string { return "mock-geocoder" }

func (m *mockGeocoder) Search(_ context.Context, _ string) ([]geocode.Candidate, error) {
	m.calls++
	return m.candidates, m.err
}

func newResolver(p *mockProvider, g *mockGeocoder) *weather.Resolver {
	return weather.NewResolver(weather.ResolverConfig{
		Provider: p,
		Geocoder: g,
		Logger:   zerolog.Nop(),
	})
}

func TestResolver_MissingCredential(t *testing.T) {
	provider := &mockProvider{hasCredential: false}
	resolver := newResolver(provider, &mockGeocoder{})

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("London"))
	require.Error(t, err)
	assert.Equal(t, weather.KindMissingCredential, weather.KindOf(err))
	assert.Zero(t, provider.nameCalls, "no upstream call without a credential")
}

func TestResolver_EmptyName(t *testing.T) {
	provider := &mockProvider{hasCredential: true}
	resolver := newResolver(provider, &mockGeocoder{})

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("   "))
	require.Error(t, err)
	assert.Equal(t, weather.KindInvalidInput, weather.KindOf(err))
}

func TestResolver_DirectHit(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameSnap: &weather.Snapshot{
			Name:         "London",
			TemperatureC: 14,
			Condition:    weather.ConditionClouds,
			Lat:          51.51,
			Lon:          -0.13,
		},
	}
	geocoder := &mockGeocoder{}
	resolver := newResolver(provider, geocoder)

	snap, err := resolver.Resolve(context.Background(), weather.NameQuery("London"))
	require.NoError(t, err)
	assert.Equal(t, "London", snap.Name)
	assert.Equal(t, 1, provider.nameCalls)
	assert.Zero(t, provider.coordsCalls)
	assert.Zero(t, geocoder.calls, "no geocoding on a direct hit")
}

func TestResolver_GeocodeFallbackUsesGeocodedCoordinates(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindNotFound, "location not found"),
		byCoordsSnap: &weather.Snapshot{
			Name:         "Wroclaw",
			TemperatureC: 9,
			Condition:    weather.ConditionRain,
			Lat:          51.1079,
			Lon:          17.0385,
		},
	}
	geocoder := &mockGeocoder{
		candidates: []geocode.Candidate{{DisplayName: "Wrocław, Poland", Lat: "51.1079", Lon: "17.0385"}},
	}
	resolver := newResolver(provider, geocoder)

	snap, err := resolver.Resolve(context.Background(), weather.NameQuery("Wroclav"))
	require.NoError(t, err)
	assert.Equal(t, 51.1079, snap.Lat)
	assert.Equal(t, 17.0385, snap.Lon)
	assert.Equal(t, 51.1079, provider.lastLat)
	assert.Equal(t, 17.0385, provider.lastLon)
	assert.Equal(t, 1, provider.nameCalls)
	assert.Equal(t, 1, provider.coordsCalls, "exactly two weather calls in total")
}

func TestResolver_GeocodeNoCandidates(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindNotFound, "location not found"),
	}
	geocoder := &mockGeocoder{} // zero candidates
	resolver := newResolver(provider, geocoder)

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("Atlantis"))
	require.Error(t, err)
	assert.Equal(t, weather.KindNotFound, weather.KindOf(err))
	assert.Contains(t, weather.MessageOf(err), "spelling")
	assert.Zero(t, provider.coordsCalls, "no coordinate retry without a candidate")
}

func TestResolver_GeocodeMalformedCoordinates(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindNotFound, "location not found"),
	}
	geocoder := &mockGeocoder{
		candidates: []geocode.Candidate{{Lat: "not-a-number", Lon: "17.0"}},
	}
	resolver := newResolver(provider, geocoder)

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("Somewhere"))
	require.Error(t, err)
	assert.Equal(t, weather.KindNotFound, weather.KindOf(err))
	assert.Zero(t, provider.coordsCalls)
}

func TestResolver_GeocodedRetryErrorIsAnnotated(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindNotFound, "location not found"),
		byCoordsErr:   weather.E(weather.KindNotFound, "location not found"),
	}
	geocoder := &mockGeocoder{
		candidates: []geocode.Candidate{{Lat: "10.0", Lon: "20.0"}},
	}
	resolver := newResolver(provider, geocoder)

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("Ghostville"))
	require.Error(t, err)
	assert.Equal(t, weather.KindNotFound, weather.KindOf(err))
	assert.Contains(t, weather.MessageOf(err), "geocoded location")
}

func TestResolver_TimeoutMessagesNamePhase(t *testing.T) {
	t.Run("direct call", func(t *testing.T) {
		provider := &mockProvider{
			hasCredential: true,
			byNameErr:     weather.E(weather.KindUpstreamTimeout, "the weather provider timed out"),
		}
		resolver := newResolver(provider, &mockGeocoder{})

		_, err := resolver.Resolve(context.Background(), weather.NameQuery("London"))
		require.Error(t, err)
		assert.Equal(t, weather.KindUpstreamTimeout, weather.KindOf(err))
		assert.Contains(t, weather.MessageOf(err), "by name")
	})

	t.Run("geocoded retry", func(t *testing.T) {
		provider := &mockProvider{
			hasCredential: true,
			byNameErr:     weather.E(weather.KindNotFound, "location not found"),
			byCoordsErr:   weather.E(weather.KindUpstreamTimeout, "the weather provider timed out"),
		}
		geocoder := &mockGeocoder{
			candidates: []geocode.Candidate{{Lat: "10.0", Lon: "20.0"}},
		}
		resolver := newResolver(provider, geocoder)

		_, err := resolver.Resolve(context.Background(), weather.NameQuery("London"))
		require.Error(t, err)
		assert.Equal(t, weather.KindUpstreamTimeout, weather.KindOf(err))
		assert.Contains(t, weather.MessageOf(err), "geocoded")
	})
}

func TestResolver_NonNotFoundErrorSkipsGeocoding(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindUpstreamRateLimited, "weather provider rate limit exceeded"),
	}
	geocoder := &mockGeocoder{
		candidates: []geocode.Candidate{{Lat: "10.0", Lon: "20.0"}},
	}
	resolver := newResolver(provider, geocoder)

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("London"))
	require.Error(t, err)
	assert.Equal(t, weather.KindUpstreamRateLimited, weather.KindOf(err))
	assert.Zero(t, geocoder.calls)
	assert.Zero(t, provider.coordsCalls)
}

func TestResolver_CoordinateQuery(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byCoordsSnap:  &weather.Snapshot{Name: "Amsterdam", Lat: 52.37, Lon: 4.89},
	}
	resolver := newResolver(provider, &mockGeocoder{})

	snap, err := resolver.Resolve(context.Background(), weather.CoordsQuery(52.37, 4.89))
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", snap.Name)
	assert.Zero(t, provider.nameCalls)
}

func TestResolver_CoordinateQueryOutOfRange(t *testing.T) {
	provider := &mockProvider{hasCredential: true}
	resolver := newResolver(provider, &mockGeocoder{})

	_, err := resolver.Resolve(context.Background(), weather.CoordsQuery(91, 0))
	require.Error(t, err)
	assert.Equal(t, weather.KindInvalidInput, weather.KindOf(err))
	assert.Zero(t, provider.coordsCalls)
}

func TestResolver_GeocoderFailureFallsBackToNotFound(t *testing.T) {
	provider := &mockProvider{
		hasCredential: true,
		byNameErr:     weather.E(weather.KindNotFound, "location not found"),
	}
	geocoder := &mockGeocoder{err: assert.AnError}
	resolver := newResolver(provider, geocoder)

	_, err := resolver.Resolve(context.Background(), weather.NameQuery("Nowhere"))
	require.Error(t, err)
	assert.Equal(t, weather.KindNotFound, weather.KindOf(err))
}
