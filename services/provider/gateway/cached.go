package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/optimat/internal/pkg/constants"
	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
	"github.com/piresc/optimat/services/provider"
	"golang.org/x/sync/singleflight"
)

const (
	// maxNegativeTTL bounds how long a failed lookup is remembered, since
	// failures include transient upstream errors
	maxNegativeTTL = 10 * time.Minute

	defaultSharedTimeout = 30 * time.Second
)

type geocodeOutcome struct {
	coord models.Coordinate
	ok    bool
}

// CachedGeocoder stores resolved addresses in Redis and collapses concurrent
// lookups of the same address into one upstream call
type CachedGeocoder struct {
	next          provider.GeocoderGW
	redisClient   *database.RedisClient
	hitTTL        time.Duration
	negativeTTL   time.Duration
	sharedTimeout time.Duration
	group         singleflight.Group
}

// NewCachedGeocoder wraps next with a Redis cache. Hits live for
// cfg.CacheTTL (forever when zero), misses for at most maxNegativeTTL.
func NewCachedGeocoder(next provider.GeocoderGW, redisClient *database.RedisClient, cfg models.GeocoderConfig) *CachedGeocoder {
	negativeTTL := cfg.CacheTTL
	if negativeTTL <= 0 || negativeTTL > maxNegativeTTL {
		negativeTTL = maxNegativeTTL
	}
	hitTTL := cfg.CacheTTL
	if hitTTL < 0 {
		hitTTL = 0
	}

	// an upstream call may wait for the rate limiter and retry
	shared := (cfg.Timeout + cfg.RateLimit) * time.Duration(cfg.MaxRetries+1)
	if shared <= 0 {
		shared = defaultSharedTimeout
	}

	return &CachedGeocoder{
		next:          next,
		redisClient:   redisClient,
		hitTTL:        hitTTL,
		negativeTTL:   negativeTTL,
		sharedTimeout: shared,
	}
}

// Geocode serves address from the cache, falling back to the wrapped
// geocoder. Redis failures degrade to uncached lookups.
//
// The upstream call is detached from any single caller so one cancelled
// request does not fail the others waiting on the same address.
func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, bool) {
	key := utils.AddressKey(address)
	if key == "" {
		return models.Coordinate{}, false
	}

	if coord, ok, hit := g.lookup(ctx, key); hit {
		return coord, ok
	}

	ch := g.group.DoChan(key, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.sharedTimeout)
		defer cancel()

		coord, ok := g.next.Geocode(sharedCtx, address)
		g.store(sharedCtx, key, coord, ok)
		return geocodeOutcome{coord: coord, ok: ok}, nil
	})

	select {
	case <-ctx.Done():
		return models.Coordinate{}, false
	case res := <-ch:
		out := res.Val.(geocodeOutcome)
		return out.coord, out.ok
	}
}

func (g *CachedGeocoder) lookup(ctx context.Context, key string) (models.Coordinate, bool, bool) {
	if g.redisClient == nil {
		return models.Coordinate{}, false, false
	}

	raw, err := g.redisClient.Get(ctx, fmt.Sprintf(constants.KeyGeocodeHit, key))
	switch {
	case err == nil:
		coord, perr := decodeCoordinate(raw)
		if perr == nil {
			return coord, true, true
		}
		logger.WarnCtx(ctx, "Discarding malformed geocode cache entry",
			logger.String("address", key), logger.Err(perr))
	case !errors.Is(err, redis.Nil):
		logger.WarnCtx(ctx, "Geocode cache read failed", logger.Err(err))
		return models.Coordinate{}, false, false
	}

	_, err = g.redisClient.Get(ctx, fmt.Sprintf(constants.KeyGeocodeNegative, key))
	switch {
	case err == nil:
		return models.Coordinate{}, false, true
	case !errors.Is(err, redis.Nil):
		logger.WarnCtx(ctx, "Geocode cache read failed", logger.Err(err))
	}
	return models.Coordinate{}, false, false
}

func (g *CachedGeocoder) store(ctx context.Context, key string, coord models.Coordinate, ok bool) {
	if g.redisClient == nil || ctx.Err() != nil {
		return
	}

	var err error
	if ok {
		err = g.redisClient.Set(ctx, fmt.Sprintf(constants.KeyGeocodeHit, key), encodeCoordinate(coord), g.hitTTL)
	} else {
		err = g.redisClient.Set(ctx, fmt.Sprintf(constants.KeyGeocodeNegative, key), "1", g.negativeTTL)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Geocode cache write failed", logger.Err(err))
	}
}

// encodeCoordinate writes "lon,lat" with the shortest representation that
// parses back to the same float64 values
func encodeCoordinate(c models.Coordinate) string {
	return strconv.FormatFloat(c.Longitude, 'g', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'g', -1, 64)
}

func decodeCoordinate(raw string) (models.Coordinate, error) {
	lonStr, latStr, found := strings.Cut(raw, ",")
	if !found {
		return models.Coordinate{}, fmt.Errorf("invalid coordinate %q", raw)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	c := models.Coordinate{Longitude: lon, Latitude: lat}
	if !c.Valid() {
		return models.Coordinate{}, fmt.Errorf("coordinate out of range %q", raw)
	}
	return c, nil
}
