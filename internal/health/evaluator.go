package health

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/weather"
)

// heavyRainMarkers are the description substrings that qualify rain as
// heavy for the HeavyRain trigger.
var heavyRainMarkers = []string{"heavy", "extreme", "shower"}

// Triggered evaluates the trigger specification against the snapshot.
// Pure predicate: each present rule is checked independently and any
// true rule triggers the concern.
func Triggered(t Trigger, snap *weather.Snapshot) bool {
	if t.LowTempC != nil && snap.TemperatureC < *t.LowTempC {
		return true
	}
	if t.HighTempC != nil && snap.TemperatureC > *t.HighTempC {
		return true
	}
	if t.HighFeelsLikeC != nil && snap.FeelsLikeC > *t.HighFeelsLikeC {
		return true
	}
	if t.ExtremeHighTempC != nil && snap.TemperatureC > *t.ExtremeHighTempC {
		return true
	}
	if humidityTriggered(t, snap) {
		return true
	}
	if t.HeavyRain && heavyRainTriggered(t, snap) {
		return true
	}
	return false
}

// humidityTriggered applies the gated humidity rule. The gate is the
// companion temperature threshold when present, else the low-temp
// threshold (inverted: temperature must be below it), else none.
func humidityTriggered(t Trigger, snap *weather.Snapshot) bool {
	if t.HighHumidityPct == nil || snap.Humidity <= *t.HighHumidityPct {
		return false
	}
	switch {
	case t.HumidityAboveTempC != nil:
		return snap.TemperatureC > *t.HumidityAboveTempC
	case t.LowTempC != nil:
		return snap.TemperatureC < *t.LowTempC
	default:
		return true
	}
}

// heavyRainTriggered matches a rain category with a heavy-rain
// description. A temperature band, when present, suppresses the
// trigger outright for temperatures outside it, even when the rain
// match alone would fire.
func heavyRainTriggered(t Trigger, snap *weather.Snapshot) bool {
	if !strings.Contains(strings.ToLower(string(snap.Condition)), "rain") {
		return false
	}

	desc := strings.ToLower(snap.Description)
	heavy := false
	for _, marker := range heavyRainMarkers {
		if strings.Contains(desc, marker) {
			heavy = true
			break
		}
	}
	if !heavy {
		return false
	}

	if t.RainTempBand != nil && !t.RainTempBand.Contains(snap.TemperatureC) {
		return false
	}
	return true
}

// Service maps requested concern keys to advisories for a snapshot.
type Service struct {
	concerns map[string]Concern
	logger   zerolog.Logger
}

// NewService creates a health service over the built-in concern table.
func NewService(logger zerolog.Logger) *Service {
	return &Service{concerns: Concerns, logger: logger}
}

// Advise evaluates each requested concern key in input order and
// returns the advisories of the triggered ones. Duplicate and unknown
// keys are skipped with a diagnostic log note; a request with no
// recognized keys at all is invalid input.
func (s *Service) Advise(keys []string, snap *weather.Snapshot) ([]Advisory, error) {
	seen := make(map[string]struct{}, len(keys))
	recognized := 0
	out := make([]Advisory, 0, len(keys))

	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		concern, ok := s.concerns[key]
		if !ok {
			s.logger.Debug().Str("concern", key).Msg("skipping unknown concern key")
			continue
		}
		recognized++

		if Triggered(concern.Trigger, snap) {
			out = append(out, Advisory{
				Key:      key,
				Name:     concern.Name,
				Advisory: concern.Advisory,
			})
		}
	}

	if recognized == 0 {
		return nil, weather.E(weather.KindInvalidInput, "no recognized health concerns requested")
	}
	return out, nil
}

// Keys returns the known concern keys, for the metadata endpoint.
func (s *Service) Keys() []string {
	keys := make([]string, 0, len(s.concerns))
	for k := range s.concerns {
		keys = append(keys, k)
	}
	return keys
}
