package matcher

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/piresc/optimat/internal/pkg/models"
)

// ErrNoPolygon is returned when a zone document holds no usable polygon
var ErrNoPolygon = errors.New("service zone has no polygon")

// Zone is a parsed service area. It is immutable and safe for concurrent use.
type Zone struct {
	polygon orb.Polygon
	bound   orb.Bound
}

// ParseZone extracts the first polygon from a GeoJSON FeatureCollection,
// Feature or bare geometry. For a MultiPolygon its first member is used.
func ParseZone(raw models.ServiceZone) (*Zone, error) {
	if len(raw) == 0 {
		return nil, ErrNoPolygon
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("invalid service zone: %w", err)
	}

	var geometries []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid feature collection: %w", err)
		}
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid feature: %w", err)
		}
		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid geometry: %w", err)
		}
		geometries = append(geometries, g.Geometry())
	}

	for _, g := range geometries {
		if p, ok := firstPolygon(g); ok {
			return &Zone{polygon: p, bound: p.Bound()}, nil
		}
	}
	return nil, ErrNoPolygon
}

func firstPolygon(g orb.Geometry) (orb.Polygon, bool) {
	var p orb.Polygon
	switch v := g.(type) {
	case orb.Polygon:
		p = v
	case orb.MultiPolygon:
		if len(v) == 0 {
			return nil, false
		}
		p = v[0]
	default:
		return nil, false
	}
	if len(p) == 0 || len(p[0]) < 3 {
		return nil, false
	}
	return p, true
}

// Contains reports whether c lies inside the zone or on its boundary.
// Points inside a hole are outside the zone.
func (z *Zone) Contains(c models.Coordinate) bool {
	if z == nil || !c.Valid() {
		return false
	}
	pt := orb.Point{c.Longitude, c.Latitude}
	if !z.bound.Contains(pt) {
		return false
	}
	return planar.PolygonContains(z.polygon, pt)
}

// Covers reports whether both trip endpoints lie in the zone
func (z *Zone) Covers(origin, destination models.Coordinate) bool {
	return z.Contains(origin) && z.Contains(destination)
}

// ZoneCovers parses raw and tests both endpoints. Any parse failure means
// the zone does not cover the trip.
func ZoneCovers(raw models.ServiceZone, origin, destination models.Coordinate) bool {
	z, err := ParseZone(raw)
	if err != nil {
		return false
	}
	return z.Covers(origin, destination)
}
