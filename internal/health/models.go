// Package health evaluates weather snapshots against declarative
// health concern trigger tables to produce advisories.
package health

// TempBand is an inclusive temperature band in Celsius.
type TempBand struct {
	LowC  float64
	HighC float64
}

// Contains reports whether t falls within the closed band.
func (b TempBand) Contains(t float64) bool {
	return t >= b.LowC && t <= b.HighC
}

// Trigger is the predicate specification for one concern. Each present
// member is evaluated independently; any true member triggers the
// concern. Nil members are inactive.
type Trigger struct {
	// LowTempC triggers when the current temperature is below it.
	LowTempC *float64

	// HighTempC triggers when the current temperature is above it.
	HighTempC *float64

	// HighFeelsLikeC triggers when the feels-like temperature is
	// above it.
	HighFeelsLikeC *float64

	// ExtremeHighTempC triggers when the current temperature is
	// above it.
	ExtremeHighTempC *float64

	// HighHumidityPct triggers when humidity is above it, gated by a
	// companion temperature rule: HumidityAboveTempC when present,
	// otherwise LowTempC (requiring temperature below it), otherwise
	// the humidity threshold stands alone.
	HighHumidityPct *float64

	// HumidityAboveTempC additionally requires the current
	// temperature above it for the humidity rule to fire.
	HumidityAboveTempC *float64

	// HeavyRain triggers on a rain category combined with a heavy,
	// extreme or shower description.
	HeavyRain bool

	// RainTempBand, when present, suppresses the heavy-rain rule
	// unless the current temperature falls within the closed band.
	RainTempBand *TempBand
}

// Concern is one named health concern with its trigger specification
// and fixed advisory text. Static data, read-only at runtime.
type Concern struct {
	Name     string
	Advisory string
	Trigger  Trigger
}

// Advisory is one triggered concern surfaced to the caller.
type Advisory struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Advisory string `json:"advisory"`
}

func ptr(v float64) *float64 { return &v }
