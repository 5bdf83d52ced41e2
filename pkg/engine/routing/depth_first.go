package routing

import (
	da "github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/util"
)

// DepthFirstSearch is the exhaustive backtracking strategy. It commits
// one outgoing flight at a time onto a frame stack, always taking the
// first unvisited departure in insertion order, and on a dead end pops
// the last commitment and resumes from the location that preceded it.
// The search fails only once a backtrack is attempted on an empty
// stack.
//
// Visited markers are never cleared by backtracking: an edge consumed
// on an abandoned branch stays excluded for the remainder of the query,
// even when a later branch passes through its tail again. The search
// stays terminating and exhaustive-over-reachable-edges either way.
type DepthFirstSearch struct {
	graph *da.FlightGraph

	visited []bool
	stack   []da.Flight

	stats QueryStatistics
}

func NewDepthFirstSearch(graph *da.FlightGraph) *DepthFirstSearch {
	return &DepthFirstSearch{
		graph: graph,
	}
}

// Preallocate resets the per-query state: a fresh all-false visitation
// side table and an empty frame stack.
func (d *DepthFirstSearch) Preallocate() {
	d.visited = d.graph.NewVisitedTable()
	d.stack = make([]da.Flight, 0, d.graph.NumberOfFlights())
	d.stats.reset()
}

// Search finds some path from from to to, trying departures in
// insertion order. The returned path is in forward order, origin first;
// it is the first feasible path discovered, not the cheapest.
func (d *DepthFirstSearch) Search(from, to string) (da.SearchPath, error) {
	d.Preallocate()

	if err := d.searchFlight(from, to); err != nil {
		return da.SearchPath{}, err
	}

	// drain the frame stack: popping yields the edges in reverse of
	// discovery order, so flip them before summing
	drained := make([]da.Flight, 0, len(d.stack))
	for len(d.stack) > 0 {
		drained = append(drained, d.pop())
	}
	legs := util.ReverseG(drained)
	return da.NewSearchPath(legs), nil
}

func (d *DepthFirstSearch) Statistics() QueryStatistics {
	return d.stats
}

func (d *DepthFirstSearch) searchFlight(from, to string) error {
	// destination reached by a direct flight: commit it and stop
	if dist, ok := d.graph.ExactDistance(from, to); ok && dist > 0 {
		d.push(da.NewFlight(from, to, dist))
		return nil
	}

	// extend the partial path with the first unvisited departure
	if next, dist, _, ok := d.graph.NextUnvisitedDeparture(from, d.visited); ok {
		d.stats.departuresTried++
		d.push(da.NewFlight(from, next, dist))
		return d.searchFlight(next, to)
	}

	// dead end: abandon the flight that led here and resume from the
	// location it departed from
	if len(d.stack) == 0 {
		return ErrNoRouteFound
	}
	frame := d.pop()
	d.stats.backtracks++
	return d.searchFlight(frame.From, to)
}

func (d *DepthFirstSearch) push(f da.Flight) {
	d.stack = append(d.stack, f)
	d.stats.framesPushed++
}

func (d *DepthFirstSearch) pop() da.Flight {
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.stats.framesPopped++
	return top
}
