// Package activity evaluates weather snapshots against declarative
// activity preference profiles to produce suitability verdicts.
package activity

// TempRange is an inclusive ideal temperature range in Celsius.
type TempRange struct {
	LowC  float64
	HighC float64
}

// Profile is a static, declarative preference table for one activity.
// Optional members are pointers; nil disables the rule.
type Profile struct {
	// Name is the display name used in verdict text.
	Name string

	// IdealTempRange is the inclusive comfortable temperature range.
	IdealTempRange *TempRange

	// MinTempC is an absolute floor, independent of the ideal range.
	MinTempC *float64

	// MaxWindKMH caps acceptable wind speed in km/h.
	MaxWindKMH *float64

	// MaxHumidity caps acceptable relative humidity in percent.
	MaxHumidity *float64

	// Avoid lists condition categories that disqualify immediately.
	// Two pseudo-categories expand to numeric checks: "Extreme Heat"
	// (temperature above the ideal range top plus 5°C) and
	// "Strong Wind" (wind above the max wind plus a 10 km/h margin).
	Avoid []string

	// Require lists condition categories the observed category must
	// match. Matching is against every entry simultaneously, so more
	// than one distinct entry can never be satisfied; see the
	// evaluator tests before changing this.
	Require []string
}

// Assessment pairs an activity with its verdict for one snapshot.
type Assessment struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Verdict string `json:"verdict"`
}

func ptr(v float64) *float64 { return &v }
