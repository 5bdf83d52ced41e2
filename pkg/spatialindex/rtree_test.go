package spatialindex

import (
	"testing"

	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildSampleIndex() *Rtree {
	rt := NewRtree()
	rt.Build(map[string]geo.Coordinate{
		"New York":    geo.NewCoordinate(40.712776, -74.005974),
		"Chicago":     geo.NewCoordinate(41.878113, -87.629799),
		"Denver":      geo.NewCoordinate(39.739235, -104.990250),
		"Los Angeles": geo.NewCoordinate(34.052235, -118.243683),
	}, zap.NewNop())
	return rt
}

func TestNearestLocation(t *testing.T) {
	rt := buildSampleIndex()

	// a point in downtown Evanston snaps to Chicago
	point, distKm, ok := rt.NearestLocation(42.045597, -87.688568)
	require.True(t, ok)
	assert.Equal(t, "Chicago", point.GetName())
	assert.Less(t, distKm, 25.0)

	// somewhere over the Rockies, Denver is the closest
	point, _, ok = rt.NearestLocation(39.5, -106.0)
	require.True(t, ok)
	assert.Equal(t, "Denver", point.GetName())
}

func TestNearestLocationEmptyIndex(t *testing.T) {
	rt := NewRtree()
	rt.Build(map[string]geo.Coordinate{}, zap.NewNop())

	_, _, ok := rt.NearestLocation(0, 0)
	assert.False(t, ok)
}

func TestCoordinate(t *testing.T) {
	rt := buildSampleIndex()

	coord, ok := rt.Coordinate("Denver")
	require.True(t, ok)
	assert.InDelta(t, 39.739235, coord.Lat, 1e-9)

	_, ok = rt.Coordinate("Atlantis")
	assert.False(t, ok)
}

func TestSearchWithinRadius(t *testing.T) {
	rt := buildSampleIndex()

	// 50 km around Chicago only holds Chicago itself
	hits := rt.SearchWithinRadius(41.878113, -87.629799, 50)
	require.Len(t, hits, 1)
	assert.Equal(t, "Chicago", hits[0].GetName())

	// the whole continent holds all four
	hits = rt.SearchWithinRadius(39.0, -95.0, 3000)
	assert.Len(t, hits, 4)
}
