package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves addresses with the Google Geocoding API
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a Google backed geocoder. Extra client options
// are passed through to the maps client.
func NewGoogleGeocoder(apiKey string, opts ...maps.ClientOption) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the location of the first Google result for address
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, bool) {
	address = utils.NormalizeAddress(address)
	if address == "" {
		return models.Coordinate{}, false
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		logger.WarnCtx(ctx, "Google geocoding failed",
			logger.String("address", utils.Truncate(address, 120)),
			logger.Err(err))
		return models.Coordinate{}, false
	}
	if len(results) == 0 {
		return models.Coordinate{}, false
	}

	loc := results[0].Geometry.Location
	coord := models.Coordinate{Longitude: loc.Lng, Latitude: loc.Lat}
	if !coord.Valid() {
		return models.Coordinate{}, false
	}
	return coord, true
}
