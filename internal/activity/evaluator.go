package activity

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/weather"
)

// Pseudo-categories in a profile's Avoid list that expand to numeric
// checks instead of condition matching.
const (
	pseudoExtremeHeat = "Extreme Heat"
	pseudoStrongWind  = "Strong Wind"

	// extremeHeatMarginC is added to the ideal range top before the
	// extreme-heat check disqualifies.
	extremeHeatMarginC = 5

	// strongWindMarginKMH is added to the max wind before the
	// strong-wind check disqualifies.
	strongWindMarginKMH = 10
)

// Evaluate applies the profile's rules to the snapshot and returns the
// suitability verdict. Pure and deterministic; it always produces a
// verdict. Rules are evaluated in a fixed order and the first match
// wins; all numeric comparisons are strict, so boundary values count
// as suitable.
func Evaluate(p Profile, snap *weather.Snapshot) string {
	for _, entry := range p.Avoid {
		switch {
		case strings.EqualFold(entry, pseudoExtremeHeat):
			if p.IdealTempRange != nil && snap.TemperatureC > p.IdealTempRange.HighC+extremeHeatMarginC {
				return "Unsuitable due to extreme heat right now."
			}
		case strings.EqualFold(entry, pseudoStrongWind):
			if p.MaxWindKMH != nil && snap.WindSpeedKMH() > *p.MaxWindKMH+strongWindMarginKMH {
				return "Unsuitable due to dangerously strong wind."
			}
		case strings.EqualFold(entry, string(snap.Condition)):
			return fmt.Sprintf("Unsuitable due to current %s conditions.", strings.ToLower(entry))
		}
	}

	if len(p.Require) > 0 && !meetsAll(p.Require, snap.Condition) {
		return fmt.Sprintf("Does not meet required conditions (%s).", strings.Join(p.Require, ", "))
	}

	if p.IdealTempRange != nil {
		if snap.TemperatureC < p.IdealTempRange.LowC {
			return fmt.Sprintf("Not ideal: %.1f°C is below the ideal range of %.0f to %.0f°C.",
				snap.TemperatureC, p.IdealTempRange.LowC, p.IdealTempRange.HighC)
		}
		if snap.TemperatureC > p.IdealTempRange.HighC {
			return fmt.Sprintf("Not ideal: %.1f°C is above the ideal range of %.0f to %.0f°C.",
				snap.TemperatureC, p.IdealTempRange.LowC, p.IdealTempRange.HighC)
		}
	}

	if p.MinTempC != nil && snap.TemperatureC < *p.MinTempC {
		return fmt.Sprintf("Too cold for %s at %.1f°C.", strings.ToLower(p.Name), snap.TemperatureC)
	}

	if p.MaxWindKMH != nil && snap.WindSpeedKMH() > *p.MaxWindKMH {
		return fmt.Sprintf("Too windy for %s: wind is %.0f km/h.", strings.ToLower(p.Name), snap.WindSpeedKMH())
	}

	if p.MaxHumidity != nil && snap.Humidity > *p.MaxHumidity {
		return fmt.Sprintf("Humidity is too high for %s (%.0f%%).", strings.ToLower(p.Name), snap.Humidity)
	}

	return fmt.Sprintf("Conditions look favorable for %s.", strings.ToLower(p.Name))
}

// meetsAll reports whether the observed category matches every
// required entry. Kept as a literal all-entries match: two distinct
// requirements are unsatisfiable, and that behaviour is the documented
// contract for existing profiles.
func meetsAll(require []string, cond weather.Condition) bool {
	for _, entry := range require {
		if !strings.EqualFold(entry, string(cond)) {
			return false
		}
	}
	return true
}

// Service assesses a set of requested activities against a snapshot.
type Service struct {
	profiles map[string]Profile
	logger   zerolog.Logger
}

// NewService creates an activity service over the built-in profile
// table.
func NewService(logger zerolog.Logger) *Service {
	return &Service{profiles: Profiles, logger: logger}
}

// Assess evaluates each requested activity key in input order.
// Duplicate and unknown keys are skipped with a diagnostic log note;
// a request with no recognized keys at all is invalid input.
func (s *Service) Assess(keys []string, snap *weather.Snapshot) ([]Assessment, error) {
	seen := make(map[string]struct{}, len(keys))
	out := make([]Assessment, 0, len(keys))

	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		profile, ok := s.profiles[key]
		if !ok {
			s.logger.Debug().Str("activity", key).Msg("skipping unknown activity key")
			continue
		}

		out = append(out, Assessment{
			Key:     key,
			Name:    profile.Name,
			Verdict: Evaluate(profile, snap),
		})
	}

	if len(out) == 0 {
		return nil, weather.E(weather.KindInvalidInput, "no recognized activities requested")
	}
	return out, nil
}

// Keys returns the known activity keys, for the metadata endpoint.
func (s *Service) Keys() []string {
	keys := make([]string, 0, len(s.profiles))
	for k := range s.profiles {
		keys = append(keys, k)
	}
	return keys
}
