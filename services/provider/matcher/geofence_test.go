package matcher

import (
	"testing"

	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	squarePolygon = `{"type":"Polygon","coordinates":[[[-123,37],[-122,37],[-122,38],[-123,38],[-123,37]]]}`

	squareWithHole = `{"type":"Polygon","coordinates":[
		[[-123,37],[-122,37],[-122,38],[-123,38],[-123,37]],
		[[-122.6,37.4],[-122.4,37.4],[-122.4,37.6],[-122.6,37.6],[-122.6,37.4]]
	]}`

	featureCollection = `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"depot"},"geometry":{"type":"Point","coordinates":[-122.5,37.5]}},
		{"type":"Feature","properties":{},"geometry":` + squarePolygon + `},
		{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}
	]}`

	multiPolygon = `{"type":"Feature","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[
		[[[-123,37],[-122,37],[-122,38],[-123,38],[-123,37]]],
		[[[0,0],[1,0],[1,1],[0,1],[0,0]]]
	]}}`
)

var (
	inside      = models.Coordinate{Longitude: -122.8, Latitude: 37.2}
	insideOther = models.Coordinate{Longitude: -122.1, Latitude: 37.9}
	outside     = models.Coordinate{Longitude: -121.5, Latitude: 37.5}
	inHole      = models.Coordinate{Longitude: -122.5, Latitude: 37.5}
	onEdge      = models.Coordinate{Longitude: -123, Latitude: 37.5}
	onVertex    = models.Coordinate{Longitude: -122, Latitude: 38}
	otherSquare = models.Coordinate{Longitude: 0.5, Latitude: 0.5}
)

func TestZoneCovers(t *testing.T) {
	testCases := []struct {
		name        string
		zone        string
		origin      models.Coordinate
		destination models.Coordinate
		expected    bool
	}{
		{name: "Both inside", zone: squarePolygon, origin: inside, destination: insideOther, expected: true},
		{name: "Destination outside", zone: squarePolygon, origin: inside, destination: outside, expected: false},
		{name: "Origin outside", zone: squarePolygon, origin: outside, destination: inside, expected: false},
		{name: "Boundary edge is covered", zone: squarePolygon, origin: onEdge, destination: inside, expected: true},
		{name: "Boundary vertex is covered", zone: squarePolygon, origin: inside, destination: onVertex, expected: true},
		{name: "Point in hole is not covered", zone: squareWithHole, origin: inside, destination: inHole, expected: false},
		{name: "Hole does not affect other points", zone: squareWithHole, origin: inside, destination: insideOther, expected: true},
		{name: "Feature collection uses first polygon", zone: featureCollection, origin: inside, destination: insideOther, expected: true},
		{name: "Later polygons are ignored", zone: featureCollection, origin: otherSquare, destination: otherSquare, expected: false},
		{name: "MultiPolygon uses first member", zone: multiPolygon, origin: inside, destination: insideOther, expected: true},
		{name: "MultiPolygon second member ignored", zone: multiPolygon, origin: otherSquare, destination: otherSquare, expected: false},
		{name: "Malformed JSON", zone: `{"type":"Polygon","coordinates":[[`, origin: inside, destination: inside, expected: false},
		{name: "No polygon", zone: `{"type":"Point","coordinates":[-122.5,37.5]}`, origin: inside, destination: inside, expected: false},
		{name: "Empty collection", zone: `{"type":"FeatureCollection","features":[]}`, origin: inside, destination: inside, expected: false},
		{name: "Empty zone", zone: ``, origin: inside, destination: inside, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ZoneCovers(models.ServiceZone(tc.zone), tc.origin, tc.destination))
		})
	}
}

func TestParseZone_Errors(t *testing.T) {
	_, err := ParseZone(models.ServiceZone(`{"type":"Point","coordinates":[1,2]}`))
	assert.ErrorIs(t, err, ErrNoPolygon)

	_, err = ParseZone(models.ServiceZone(`not json`))
	assert.Error(t, err)

	_, err = ParseZone(models.ServiceZone(`{"type":"Polygon","coordinates":[[[0,0],[1,1]]]}`))
	assert.Error(t, err)
}

func TestZone_ReparseIsDeterministic(t *testing.T) {
	points := []models.Coordinate{inside, insideOther, outside, inHole, onEdge, onVertex}

	first, err := ParseZone(models.ServiceZone(squareWithHole))
	require.NoError(t, err)
	second, err := ParseZone(models.ServiceZone(squareWithHole))
	require.NoError(t, err)

	for _, p := range points {
		assert.Equal(t, first.Contains(p), second.Contains(p), p.String())
		assert.Equal(t, first.Contains(p), first.Contains(p), p.String())
	}
}

func TestZone_ContainsRejectsInvalidCoordinate(t *testing.T) {
	z, err := ParseZone(models.ServiceZone(squarePolygon))
	require.NoError(t, err)

	assert.False(t, z.Contains(models.Coordinate{Longitude: -122.5, Latitude: 95}))

	var nilZone *Zone
	assert.False(t, nilZone.Covers(inside, inside))
}
