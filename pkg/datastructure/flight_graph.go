package datastructure

import (
	"errors"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/util"
)

var (
	ErrCapacityExceeded = errors.New("flight graph capacity exceeded")
)

// FlightGraph is an append-only, fixed-capacity collection of directed
// flights. Insertion order is part of the observable contract: every
// lookup scans in insertion order and returns the first match, which is
// what decides the tie-break between parallel edges during a search.
type FlightGraph struct {
	flights  []Flight
	capacity int
}

func NewFlightGraph(capacity int) *FlightGraph {
	util.AssertPanic(capacity > 0, "flight graph capacity must be positive")
	return &FlightGraph{
		flights:  make([]Flight, 0, capacity),
		capacity: capacity,
	}
}

// Insert appends one flight. The graph is left untouched when the
// capacity bound is already reached.
func (g *FlightGraph) Insert(from, to string, distance int) error {
	util.AssertPanic(validLocationName(from), "invalid origin location name")
	util.AssertPanic(validLocationName(to), "invalid destination location name")
	util.AssertPanic(distance >= 0, "flight distance must be non-negative")

	if len(g.flights) >= g.capacity {
		return ErrCapacityExceeded
	}
	g.flights = append(g.flights, NewFlight(from, to, distance))
	return nil
}

// ExactDistance scans for the first flight matching (from, to) exactly,
// case-sensitive, and returns its distance. Visitation state is neither
// consulted nor touched.
func (g *FlightGraph) ExactDistance(from, to string) (int, bool) {
	for i := range g.flights {
		if g.flights[i].From == from && g.flights[i].To == to {
			return g.flights[i].Distance, true
		}
	}
	return 0, false
}

// NextUnvisitedDeparture scans for the first flight leaving from with
// visited[edge]==false and marks it visited as a side effect. Repeated
// calls with the same table enumerate all departures of a location
// without repetition within one search. visited must have length
// NumberOfFlights (NewVisitedTable).
func (g *FlightGraph) NextUnvisitedDeparture(from string, visited []bool) (string, int, int, bool) {
	for i := range g.flights {
		if g.flights[i].From == from && !visited[i] {
			visited[i] = true
			return g.flights[i].To, g.flights[i].Distance, i, true
		}
	}
	return "", 0, pkg.INVALID_EDGE_ID, false
}

// NewVisitedTable returns a fresh all-false visitation side table for
// one search invocation over this graph.
func (g *FlightGraph) NewVisitedTable() []bool {
	return make([]bool, len(g.flights))
}

func (g *FlightGraph) NumberOfFlights() int {
	return len(g.flights)
}

func (g *FlightGraph) Capacity() int {
	return g.capacity
}

func (g *FlightGraph) Flight(i int) Flight {
	return g.flights[i]
}

func (g *FlightGraph) ForFlights(f func(flight Flight, edgeIdx int)) {
	for i := range g.flights {
		f(g.flights[i], i)
	}
}

// Locations returns the distinct location names appearing as an
// endpoint of any flight, in first-appearance order.
func (g *FlightGraph) Locations() []string {
	seen := make(map[string]struct{}, 2*len(g.flights))
	locations := make([]string, 0, 2*len(g.flights))
	for i := range g.flights {
		if _, ok := seen[g.flights[i].From]; !ok {
			seen[g.flights[i].From] = struct{}{}
			locations = append(locations, g.flights[i].From)
		}
		if _, ok := seen[g.flights[i].To]; !ok {
			seen[g.flights[i].To] = struct{}{}
			locations = append(locations, g.flights[i].To)
		}
	}
	return locations
}

func validLocationName(name string) bool {
	return len(name) > 0 && len(name) <= pkg.MAX_LOCATION_NAME_LENGTH
}
