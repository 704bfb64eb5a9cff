package weather_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weatherlens/weatherlens/internal/weather"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind weather.Kind
		want int
	}{
		{weather.KindInvalidInput, http.StatusBadRequest},
		{weather.KindNotFound, http.StatusNotFound},
		{weather.KindUpstreamUnauthorized, http.StatusUnauthorized},
		{weather.KindUpstreamRateLimited, http.StatusTooManyRequests},
		{weather.KindUpstreamTimeout, http.StatusGatewayTimeout},
		{weather.KindUpstreamUnreachable, http.StatusServiceUnavailable},
		{weather.KindMissingCredential, http.StatusInternalServerError},
		{weather.KindMalformedUpstream, http.StatusInternalServerError},
		{weather.KindUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := weather.Wrap(weather.KindUpstreamUnreachable, "could not reach the weather provider", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "could not reach the weather provider")
}

func TestKindOf(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := weather.E(weather.KindNotFound, "location not found")
		assert.Equal(t, weather.KindNotFound, weather.KindOf(err))
	})

	t.Run("wrapped deeper", func(t *testing.T) {
		inner := weather.E(weather.KindUpstreamTimeout, "the weather provider timed out")
		err := fmt.Errorf("resolving: %w", inner)
		assert.Equal(t, weather.KindUpstreamTimeout, weather.KindOf(err))
	})

	t.Run("foreign error", func(t *testing.T) {
		assert.Equal(t, weather.KindUnexpected, weather.KindOf(errors.New("boom")))
	})
}

func TestMessageOf(t *testing.T) {
	err := weather.Wrap(weather.KindNotFound, "no weather data found", errors.New("404 from upstream"))
	assert.Equal(t, "no weather data found", weather.MessageOf(err))

	assert.Equal(t, "an unexpected error occurred", weather.MessageOf(errors.New("boom")))
}
