package routing

import (
	"errors"

	"github.com/davin-b-s/aeronavix/pkg/datastructure"
)

// ErrNoRouteFound is the expected outcome of an exhausted search, not a
// failure of the engine itself.
var ErrNoRouteFound = errors.New("no route found between the requested locations")

// RouteSearcher is one search strategy over a flight graph. A searcher
// owns its per-query state (visitation side table, frame stack), so one
// instance serves exactly one query at a time; the engine builds a
// fresh one per invocation.
type RouteSearcher interface {
	Search(from, to string) (datastructure.SearchPath, error)
	Statistics() QueryStatistics
}
