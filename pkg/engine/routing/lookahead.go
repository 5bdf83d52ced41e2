package routing

import (
	da "github.com/davin-b-s/aeronavix/pkg/datastructure"
)

// LookaheadSearch is the restricted one-step forward-lookahead
// strategy: take a departure from the origin and check whether that
// intermediate location connects to the destination by a direct flight.
// It only ever builds two-leg paths and never walks deeper than one
// intermediate, so it is not a real breadth-first traversal.
//
// The loop is bounded by the visitation side table: once every
// departure from the origin has been consumed without a one-hop
// connection, the query ends with ErrNoRouteFound instead of spinning.
type LookaheadSearch struct {
	graph *da.FlightGraph

	visited []bool
	stack   []da.Flight

	stats QueryStatistics
}

func NewLookaheadSearch(graph *da.FlightGraph) *LookaheadSearch {
	return &LookaheadSearch{
		graph: graph,
	}
}

func (l *LookaheadSearch) Preallocate() {
	l.visited = l.graph.NewVisitedTable()
	l.stack = make([]da.Flight, 0, 2)
	l.stats.reset()
}

func (l *LookaheadSearch) Search(from, to string) (da.SearchPath, error) {
	l.Preallocate()

	for {
		next, dist, _, ok := l.graph.NextUnvisitedDeparture(from, l.visited)
		if !ok {
			// every departure from the origin tried, none one-hop
			// connects to the destination
			return da.SearchPath{}, ErrNoRouteFound
		}
		l.stats.departuresTried++

		if hop, ok := l.graph.ExactDistance(next, to); ok && hop > 0 {
			l.push(da.NewFlight(from, next, dist))
			l.push(da.NewFlight(next, to, hop))

			legs := make([]da.Flight, len(l.stack))
			copy(legs, l.stack)
			return da.NewSearchPath(legs), nil
		}
	}
}

func (l *LookaheadSearch) Statistics() QueryStatistics {
	return l.stats
}

func (l *LookaheadSearch) push(f da.Flight) {
	l.stack = append(l.stack, f)
	l.stats.framesPushed++
}
