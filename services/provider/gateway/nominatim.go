package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/piresc/optimat/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/optimat/internal/pkg/http"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/pkg/retry"
	"github.com/piresc/optimat/internal/utils"
	"golang.org/x/time/rate"
)

// nominatimPlace is one entry of a Nominatim search response
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder resolves addresses against an OpenStreetMap Nominatim
// instance. Calls are spaced by the configured rate limit.
type NominatimGeocoder struct {
	client  *httpclient.Client
	limiter *rate.Limiter
}

// NewNominatimGeocoder creates a Nominatim backed geocoder
func NewNominatimGeocoder(cfg models.GeocoderConfig, l *logger.ZapLogger) *NominatimGeocoder {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.BaseDelay = cfg.RateLimit

	var breaker *circuitbreaker.CircuitBreaker
	if cfg.BreakerThreshold > 0 {
		breaker = circuitbreaker.New(circuitbreaker.Config{
			Name:             "nominatim",
			FailureThreshold: uint32(cfg.BreakerThreshold),
			Timeout:          cfg.BreakerTimeout,
			IsFailure:        httpclient.IsUpstreamFailure,
		}, l)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Every(cfg.RateLimit)
	}

	return &NominatimGeocoder{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:   cfg.NominatimURL,
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			Retrier:   retry.New(retryCfg, l),
			Breaker:   breaker,
		}),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Geocode returns the first Nominatim hit for address
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, bool) {
	address = utils.NormalizeAddress(address)
	if address == "" {
		return models.Coordinate{}, false
	}

	if err := g.limiter.Wait(ctx); err != nil {
		logger.WarnCtx(ctx, "Geocoding cancelled while rate limited", logger.Err(err))
		return models.Coordinate{}, false
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	var places []nominatimPlace
	if err := g.client.GetJSON(ctx, "/search", query, &places); err != nil {
		logger.WarnCtx(ctx, "Nominatim request failed",
			logger.String("address", utils.Truncate(address, 120)),
			logger.Err(err))
		return models.Coordinate{}, false
	}
	if len(places) == 0 {
		return models.Coordinate{}, false
	}

	lat, errLat := strconv.ParseFloat(places[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(places[0].Lon, 64)
	if errLat != nil || errLon != nil {
		logger.WarnCtx(ctx, "Nominatim returned an unreadable position",
			logger.String("lat", places[0].Lat),
			logger.String("lon", places[0].Lon))
		return models.Coordinate{}, false
	}

	coord := models.Coordinate{Longitude: lon, Latitude: lat}
	if !coord.Valid() {
		return models.Coordinate{}, false
	}
	return coord, true
}
