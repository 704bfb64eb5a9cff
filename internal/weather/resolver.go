package weather

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/geocode"
)

// Provider defines the interface for current-weather providers.
type Provider interface {
	// CurrentByName fetches current weather for a free-text place name.
	CurrentByName(ctx context.Context, name string) (*Snapshot, error)

	// CurrentByCoords fetches current weather for a coordinate pair.
	CurrentByCoords(ctx context.Context, lat, lon float64) (*Snapshot, error)

	// HasCredential reports whether the provider is configured with an
	// API key. Resolution fails fast when it is not.
	HasCredential() bool

	// Name returns the provider name for logging.
	Name() string
}

// Geocoder defines the interface for the fallback geocoding provider.
type Geocoder interface {
	// Search returns zero or more candidates for a free-text place name.
	Search(ctx context.Context, name string) ([]geocode.Candidate, error)

	// Name returns the provider name for logging.
	Name() string
}

// phase identifies which step of the fallback chain an upstream error
// came from, so error messages can say which call failed.
type phase int

const (
	phaseDirect phase = iota
	phaseGeocodedRetry
)

// ResolverConfig holds configuration for the snapshot resolver.
type ResolverConfig struct {
	// Provider is the current-weather provider (required).
	Provider Provider

	// Geocoder is the fallback geocoding provider (required).
	Geocoder Geocoder

	// Logger for resolver operations.
	Logger zerolog.Logger
}

// Resolver turns a LocationQuery into a normalized Snapshot. When the
// provider cannot match a place name directly, the resolver geocodes
// the name and retries once by coordinates. A resolution never issues
// more than two weather calls.
type Resolver struct {
	provider Provider
	geocoder Geocoder
	logger   zerolog.Logger
}

// NewResolver creates a new snapshot resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	return &Resolver{
		provider: cfg.Provider,
		geocoder: cfg.Geocoder,
		logger:   cfg.Logger,
	}
}

// Resolve fetches the current-weather snapshot for the query. Failures
// are always a *Error whose Kind maps onto an HTTP status.
func (r *Resolver) Resolve(ctx context.Context, q LocationQuery) (*Snapshot, error) {
	if !r.provider.HasCredential() {
		return nil, E(KindMissingCredential, "weather provider is not configured on the server")
	}

	if q.Coords != nil {
		if !q.Coords.Valid() {
			return nil, E(KindInvalidInput, "latitude must be in [-90,90] and longitude in [-180,180]")
		}
		snap, err := r.provider.CurrentByCoords(ctx, q.Coords.Lat, q.Coords.Lon)
		if err != nil {
			return nil, annotate(err, phaseDirect)
		}
		return snap, nil
	}

	name := strings.TrimSpace(q.Name)
	if name == "" {
		return nil, E(KindInvalidInput, "a place name is required")
	}

	snap, err := r.provider.CurrentByName(ctx, name)
	if err == nil {
		return snap, nil
	}
	if KindOf(err) != KindNotFound {
		return nil, annotate(err, phaseDirect)
	}

	// The provider has no direct match for the name. Geocode it and
	// retry once by coordinates.
	lat, lon, ok := r.geocodeName(ctx, name)
	if !ok {
		return nil, Wrap(KindNotFound,
			"no weather data found for \""+name+"\"; check the spelling or try a nearby larger city",
			err)
	}

	r.logger.Debug().
		Str("name", name).
		Float64("lat", lat).
		Float64("lon", lon).
		Str("geocoder", r.geocoder.Name()).
		Msg("retrying weather lookup with geocoded coordinates")

	snap, err = r.provider.CurrentByCoords(ctx, lat, lon)
	if err != nil {
		return nil, annotate(err, phaseGeocodedRetry)
	}
	return snap, nil
}

// geocodeName resolves a place name to coordinates via the fallback
// geocoder. Any failure here is absorbed: the caller falls back to the
// original not-found result.
func (r *Resolver) geocodeName(ctx context.Context, name string) (lat, lon float64, ok bool) {
	candidates, err := r.geocoder.Search(ctx, name)
	if err != nil {
		r.logger.Warn().Err(err).Str("name", name).Msg("geocoding fallback failed")
		return 0, 0, false
	}
	if len(candidates) == 0 {
		r.logger.Debug().Str("name", name).Msg("geocoding fallback returned no candidates")
		return 0, 0, false
	}

	lat, lon, err = candidates[0].Coordinates()
	if err != nil {
		r.logger.Warn().Err(err).Str("name", name).Msg("geocoding candidate has unusable coordinates")
		return 0, 0, false
	}
	return lat, lon, true
}

// annotate rewrites an upstream error so its message carries the
// fallback phase it came from. Non-domain errors become KindUnexpected.
func annotate(err error, ph phase) error {
	var werr *Error
	if !errors.As(err, &werr) {
		return Wrap(KindUnexpected, "an unexpected error occurred", err)
	}

	out := &Error{Kind: werr.Kind, Message: werr.Message, Err: err}
	switch {
	case werr.Kind == KindUpstreamTimeout && ph == phaseGeocodedRetry:
		out.Message = "the weather provider timed out while looking up the geocoded location"
	case werr.Kind == KindUpstreamTimeout:
		out.Message = "the weather provider timed out while looking up the location by name"
	case ph == phaseGeocodedRetry:
		out.Message = werr.Message + " (for the geocoded location)"
	}
	return out
}
