package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/optimat/internal/pkg/models"
)

// DefaultGeohashPrecision gives cells of roughly 150m
const DefaultGeohashPrecision uint = 7

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Longitude: lng, Latitude: lat}
}
