package usecases

import (
	"errors"
	"testing"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/spatialindex"
	"github.com/davin-b-s/aeronavix/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildService(t *testing.T, capacity int) *RoutingService {
	t.Helper()

	g := datastructure.NewFlightGraph(capacity)
	flights := []datastructure.Flight{
		{From: "New York", To: "Chicago", Distance: 1000},
		{From: "Chicago", To: "Denver", Distance: 1000},
		{From: "New York", To: "Toronto", Distance: 800},
		{From: "Denver", To: "Los Angeles", Distance: 1000},
	}
	for _, f := range flights {
		require.NoError(t, g.Insert(f.From, f.To, f.Distance))
	}

	rt := spatialindex.NewRtree()
	rt.Build(map[string]geo.Coordinate{
		"New York":    geo.NewCoordinate(40.712776, -74.005974),
		"Chicago":     geo.NewCoordinate(41.878113, -87.629799),
		"Denver":      geo.NewCoordinate(39.739235, -104.990250),
		"Los Angeles": geo.NewCoordinate(34.052235, -118.243683),
	}, zap.NewNop())

	return NewRoutingService(zap.NewNop(), engine.NewEngine(g, zap.NewNop()), rt, 4)
}

func TestRouteWithGeometry(t *testing.T) {
	rs := buildService(t, 100)

	path, pathPolyline, greatCircleKm, err := rs.Route("New York", "Los Angeles", pkg.DEPTH_FIRST)
	require.NoError(t, err)

	assert.Equal(t, 3000, path.TotalDistance)
	assert.NotEmpty(t, pathPolyline)
	// straight-line New York - Los Angeles is just under 4000 km
	assert.InDelta(t, 3940, greatCircleKm, 60)
}

func TestRouteWithoutCoordinatesSkipsGeometry(t *testing.T) {
	rs := buildService(t, 100)
	require.NoError(t, rs.AddFlight("Chicago", "Springfield", 300))

	// Springfield has no registered coordinate, so the path comes back
	// without geometry
	path, pathPolyline, greatCircleKm, err := rs.Route("New York", "Springfield", pkg.DEPTH_FIRST)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", path.Destination())
	assert.Empty(t, pathPolyline)
	assert.Zero(t, greatCircleKm)
}

func TestRouteNotFoundCode(t *testing.T) {
	rs := buildService(t, 100)

	_, _, _, err := rs.Route("Los Angeles", "New York", pkg.DEPTH_FIRST)
	require.Error(t, err)

	var serviceErr *util.Error
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, util.ErrNotFound, serviceErr.Code())
}

func TestBatchRoute(t *testing.T) {
	rs := buildService(t, 100)

	queries := []RouteQuery{
		{Index: 0, Origin: "New York", Dest: "Los Angeles"},
		{Index: 1, Origin: "Los Angeles", Dest: "New York"},
		{Index: 2, Origin: "Chicago", Dest: "Los Angeles"},
	}
	results := rs.BatchRoute(queries, pkg.DEPTH_FIRST)
	require.Len(t, results, 3)

	assert.True(t, results[0].Found)
	assert.Equal(t, 3000, results[0].Path.TotalDistance)

	assert.False(t, results[1].Found)

	assert.True(t, results[2].Found)
	assert.Equal(t, 2000, results[2].Path.TotalDistance)

	for i, res := range results {
		assert.Equal(t, i, res.Index)
	}
}

func TestNearestLocation(t *testing.T) {
	rs := buildService(t, 100)

	name, _, distKm, err := rs.NearestLocation(42.045597, -87.688568)
	require.NoError(t, err)
	assert.Equal(t, "Chicago", name)
	assert.Less(t, distKm, 25.0)
}

func TestLocationsSorted(t *testing.T) {
	rs := buildService(t, 100)

	assert.Equal(t, []string{"Chicago", "Denver", "Los Angeles", "New York", "Toronto"},
		rs.Locations())
}

func TestAddFlightCapacityConflict(t *testing.T) {
	rs := buildService(t, 4) // already full

	err := rs.AddFlight("Denver", "Houston", 1500)
	require.Error(t, err)

	var serviceErr *util.Error
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, util.ErrConflict, serviceErr.Code())
}
