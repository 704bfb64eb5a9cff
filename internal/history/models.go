// Package history aggregates same-calendar-day weather for the three
// years preceding an anchor date, with per-year failure containment.
package history

import "github.com/weatherlens/weatherlens/internal/weather"

// DaySummary is one day's archive measurements as returned by a
// provider. Nil members mean the archive holds no value for that day;
// they are carried through as "not available" rather than failing the
// record.
type DaySummary struct {
	// Date in YYYY-MM-DD form, as echoed by the provider.
	Date string

	MaxTempC        *float64
	MinTempC        *float64
	PrecipitationMM *float64
}

// DayRecord is one lookback year's result: either measurements or an
// error category, never both. A failed year never affects its
// siblings.
type DayRecord struct {
	Year int    `json:"year"`
	Date string `json:"date"`

	MaxTempC        *float64 `json:"max_temp_c"`
	MinTempC        *float64 `json:"min_temp_c"`
	PrecipitationMM *float64 `json:"precipitation_mm"`

	// Error categorizes the failure when the year could not be
	// fetched; empty on success.
	Error weather.Kind `json:"error,omitempty"`
}

// Failed reports whether the record carries an error marker.
func (r DayRecord) Failed() bool { return r.Error != "" }
