package provider

import (
	"context"

	"github.com/piresc/optimat/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/optimat/services/provider GeocoderGW

// GeocoderGW resolves addresses to coordinates. Failures of any kind are
// reported as ok == false.
type GeocoderGW interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, bool)
}
