package engine

import (
	"errors"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine/routing"
	"github.com/davin-b-s/aeronavix/pkg/util"
	"go.uber.org/zap"
)

var ErrUnknownSearchMethod = errors.New("unknown search method")

// Engine is the query facade over one immutable flight graph. Every
// Route call builds a fresh strategy instance with its own visitation
// side table and frame stack, so concurrent queries over the same graph
// are safe.
type Engine struct {
	graph *datastructure.FlightGraph
	log   *zap.Logger
}

func NewEngine(graph *datastructure.FlightGraph, logger *zap.Logger) *Engine {
	return &Engine{
		graph: graph,
		log:   logger,
	}
}

// NewEngineFromFile builds the graph from a flights csv file.
func NewEngineFromFile(flightsFilePath string, capacity int, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading flights from ", zap.String("flightsFilePath", flightsFilePath))

	graph := datastructure.NewFlightGraph(capacity)
	if err := datastructure.ReadFlights(flightsFilePath, graph); err != nil {
		return nil, err
	}
	logger.Info("Flight graph loaded", zap.Int("flights", graph.NumberOfFlights()),
		zap.Int("capacity", graph.Capacity()))

	return NewEngine(graph, logger), nil
}

func (e *Engine) GetGraph() *datastructure.FlightGraph {
	return e.graph
}

// Route runs one search between from and to with the requested
// strategy. ErrNoRouteFound from the strategy is passed through
// unchanged; it is an expected outcome.
func (e *Engine) Route(from, to string, method pkg.SearchMethod) (datastructure.SearchPath, error) {
	var searcher routing.RouteSearcher
	switch method {
	case pkg.DEPTH_FIRST:
		searcher = routing.NewDepthFirstSearch(e.graph)
	case pkg.LOOKAHEAD:
		searcher = routing.NewLookaheadSearch(e.graph)
	default:
		return datastructure.SearchPath{}, util.WrapErrorf(ErrUnknownSearchMethod,
			util.ErrBadParamInput, "unknown search method %d", method)
	}

	path, err := searcher.Search(from, to)
	stats := searcher.Statistics()
	e.log.Debug("route query finished",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("method", method.String()),
		zap.Int("frames_pushed", stats.GetFramesPushed()),
		zap.Int("backtracks", stats.GetBacktracks()),
		zap.Int("departures_tried", stats.GetDeparturesTried()),
		zap.Bool("found", err == nil),
	)
	if err != nil {
		return datastructure.SearchPath{}, err
	}
	return path, nil
}
