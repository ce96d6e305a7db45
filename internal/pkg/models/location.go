package models

import "fmt"

// Coordinate is a WGS84 point in (longitude, latitude) order
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Valid reports whether the coordinate lies within WGS84 bounds
func (c Coordinate) Valid() bool {
	return c.Longitude >= -180 && c.Longitude <= 180 &&
		c.Latitude >= -90 && c.Latitude <= 90
}

// Pair returns the coordinate as a [longitude, latitude] array
func (c Coordinate) Pair() [2]float64 {
	return [2]float64{c.Longitude, c.Latitude}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Longitude, c.Latitude)
}

// GeocodeResult is returned by the geocode utility endpoint
type GeocodeResult struct {
	Address     string      `json:"address"`
	Coordinates *[2]float64 `json:"coordinates"`
	Geohash     string      `json:"geohash,omitempty"`
}
