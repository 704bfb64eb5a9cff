// Package weather defines the normalized current-weather model and the
// snapshot resolver that turns a place name or coordinate pair into one.
package weather

// Condition is the closed vocabulary of weather condition categories.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionMist         Condition = "Mist"
	ConditionFog          Condition = "Fog"
	ConditionHaze         Condition = "Haze"
	ConditionUnknown      Condition = "Unknown"
)

// Snapshot is a single normalized current-weather reading for one
// location at request time. It lives for one request and is never cached.
type Snapshot struct {
	// Name is the place name as resolved by the provider.
	Name string

	// Temperatures in Celsius.
	TemperatureC float64
	FeelsLikeC   float64

	// Humidity percentage (0-100).
	Humidity float64

	// Barometric pressure in hPa.
	Pressure float64

	// Wind speed in m/s as reported by the provider.
	WindSpeedMS float64

	// Condition category, free-text description and provider code.
	Condition     Condition
	Description   string
	ConditionCode int

	// Resolved coordinates.
	Lat float64
	Lon float64
}

// WindSpeedKMH returns the wind speed converted to km/h.
func (s *Snapshot) WindSpeedKMH() float64 {
	return s.WindSpeedMS * 3.6
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the pair is within geographic bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// LocationQuery is the immutable input to a resolution: either a
// free-text place name or an explicit coordinate pair.
type LocationQuery struct {
	Name   string
	Coords *Coordinates
}

// NameQuery builds a query for a free-text place name.
func NameQuery(name string) LocationQuery {
	return LocationQuery{Name: name}
}

// CoordsQuery builds a query for an explicit coordinate pair.
func CoordsQuery(lat, lon float64) LocationQuery {
	return LocationQuery{Coords: &Coordinates{Lat: lat, Lon: lon}}
}
