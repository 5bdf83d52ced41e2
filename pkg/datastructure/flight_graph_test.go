package datastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndCapacityBoundary(t *testing.T) {
	g := NewFlightGraph(2)

	require.NoError(t, g.Insert("New York", "Chicago", 1000))
	require.NoError(t, g.Insert("Chicago", "Denver", 1000))
	assert.Equal(t, 2, g.NumberOfFlights())

	// one insert beyond capacity is refused and leaves the graph unchanged
	err := g.Insert("Denver", "Houston", 1500)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, g.NumberOfFlights())
	assert.Equal(t, NewFlight("New York", "Chicago", 1000), g.Flight(0))
	assert.Equal(t, NewFlight("Chicago", "Denver", 1000), g.Flight(1))
}

func TestExactDistance(t *testing.T) {
	g := NewFlightGraph(10)
	require.NoError(t, g.Insert("New York", "Chicago", 1000))
	require.NoError(t, g.Insert("New York", "Chicago", 700)) // parallel edge, inserted later

	dist, ok := g.ExactDistance("New York", "Chicago")
	require.True(t, ok)
	// first match in insertion order wins, the parallel edge is shadowed
	assert.Equal(t, 1000, dist)

	// case-sensitive, no normalization
	_, ok = g.ExactDistance("new york", "Chicago")
	assert.False(t, ok)

	_, ok = g.ExactDistance("Chicago", "New York")
	assert.False(t, ok)
}

func TestNextUnvisitedDepartureEnumeratesInInsertionOrder(t *testing.T) {
	g := NewFlightGraph(10)
	require.NoError(t, g.Insert("New York", "Chicago", 1000))
	require.NoError(t, g.Insert("Chicago", "Denver", 1000))
	require.NoError(t, g.Insert("New York", "Toronto", 800))
	require.NoError(t, g.Insert("New York", "Denver", 1900))

	visited := g.NewVisitedTable()

	wantOrder := []string{"Chicago", "Toronto", "Denver"}
	for _, want := range wantOrder {
		to, _, edgeIdx, ok := g.NextUnvisitedDeparture("New York", visited)
		require.True(t, ok)
		assert.Equal(t, want, to)
		assert.True(t, visited[edgeIdx])
	}

	_, _, _, ok := g.NextUnvisitedDeparture("New York", visited)
	assert.False(t, ok)

	// a fresh side table starts the enumeration over; the graph itself
	// holds no visitation state
	to, dist, _, ok := g.NextUnvisitedDeparture("New York", g.NewVisitedTable())
	require.True(t, ok)
	assert.Equal(t, "Chicago", to)
	assert.Equal(t, 1000, dist)
}

func TestLocations(t *testing.T) {
	g := NewFlightGraph(10)
	require.NoError(t, g.Insert("New York", "Chicago", 1000))
	require.NoError(t, g.Insert("Chicago", "Denver", 1000))
	require.NoError(t, g.Insert("New York", "Denver", 1900))

	assert.Equal(t, []string{"New York", "Chicago", "Denver"}, g.Locations())
}

func TestSearchPath(t *testing.T) {
	path := NewSearchPath([]Flight{
		NewFlight("New York", "Chicago", 1000),
		NewFlight("Chicago", "Denver", 1000),
		NewFlight("Denver", "Los Angeles", 1000),
	})

	assert.Equal(t, 3000, path.TotalDistance)
	assert.Equal(t, "New York", path.Origin())
	assert.Equal(t, "Los Angeles", path.Destination())
	assert.Equal(t, []string{"New York", "Chicago", "Denver", "Los Angeles"}, path.Waypoints())
}

func TestReadFlights(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "flights.csv")
	content := "# sample\nNew York,Chicago,1000\n\nChicago,Denver,1000\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	g := NewFlightGraph(10)
	require.NoError(t, ReadFlights(file, g))
	assert.Equal(t, 2, g.NumberOfFlights())
	assert.Equal(t, NewFlight("New York", "Chicago", 1000), g.Flight(0))

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("New York,Chicago\n"), 0o644))
	require.Error(t, ReadFlights(bad, NewFlightGraph(10)))
}

func TestReadLocationCoordinates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "locations.csv")
	content := "New York,40.712776,-74.005974\nChicago,41.878113,-87.629799\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	coords, err := ReadLocationCoordinates(file)
	require.NoError(t, err)
	require.Len(t, coords, 2)
	assert.InDelta(t, 41.878113, coords["Chicago"].Lat, 1e-9)
	assert.InDelta(t, -87.629799, coords["Chicago"].Lon, 1e-9)
}
