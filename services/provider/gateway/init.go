package gateway

import (
	"fmt"
	"strings"

	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
)

// NewGeocoderGW builds the configured geocoding backend, wrapped by the Redis
// cache when a client is given
func NewGeocoderGW(cfg models.GeocoderConfig, redisClient *database.RedisClient, l *logger.ZapLogger) (provider.GeocoderGW, error) {
	var backend provider.GeocoderGW
	switch strings.ToLower(cfg.Provider) {
	case "", "nominatim":
		backend = NewNominatimGeocoder(cfg, l)
	case "google":
		g, err := NewGoogleGeocoder(cfg.GoogleAPIKey)
		if err != nil {
			return nil, err
		}
		backend = g
	default:
		return nil, fmt.Errorf("unknown geocoder provider %q", cfg.Provider)
	}

	if redisClient == nil {
		return backend, nil
	}
	return NewCachedGeocoder(backend, redisClient, cfg), nil
}
