// Package geocode defines the geocoding domain model used by the
// snapshot resolver's fallback path.
package geocode

import (
	"errors"
	"strconv"
)

// ErrBadCoordinates is returned when a candidate carries coordinate
// strings that cannot be parsed or are out of geographic bounds.
var ErrBadCoordinates = errors.New("geocode: candidate has unusable coordinates")

// Candidate is one geocoding match. Latitude and longitude arrive as
// decimal strings, exactly as the provider returns them.
type Candidate struct {
	DisplayName string
	Lat         string
	Lon         string
}

// Coordinates parses the candidate's coordinate strings.
func (c Candidate) Coordinates() (lat, lon float64, err error) {
	lat, latErr := strconv.ParseFloat(c.Lat, 64)
	lon, lonErr := strconv.ParseFloat(c.Lon, 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, ErrBadCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, ErrBadCoordinates
	}
	return lat, lon, nil
}
