package usecases

import (
	"errors"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/concurrent"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine/routing"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var ErrNoNearbyLocation = errors.New("no nearby location")

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	batchWorkers int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	batchWorkers int) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		batchWorkers: batchWorkers,
	}
}

// Route runs one search and enriches the result with an encoded
// polyline and a great-circle baseline when every waypoint has a
// registered coordinate. The polyline is empty otherwise.
func (rs *RoutingService) Route(from, to string, method pkg.SearchMethod) (datastructure.SearchPath,
	string, float64, error) {
	path, err := rs.engine.Route(from, to, method)
	if err != nil {
		if errors.Is(err, routing.ErrNoRouteFound) {
			return datastructure.SearchPath{}, "", 0, util.WrapErrorf(err, util.ErrNotFound,
				"no route found from %s to %s", from, to)
		}
		return datastructure.SearchPath{}, "", 0, err
	}

	pathPolyline, greatCircleKm := rs.routeGeometry(path)
	return path, pathPolyline, greatCircleKm, nil
}

func (rs *RoutingService) routeGeometry(path datastructure.SearchPath) (string, float64) {
	waypoints := path.Waypoints()
	coords := make([]geo.Coordinate, 0, len(waypoints))
	for _, name := range waypoints {
		coord, ok := rs.spatialIndex.Coordinate(name)
		if !ok {
			return "", 0
		}
		coords = append(coords, coord)
	}
	if len(coords) < 2 {
		return "", 0
	}

	pathPolyline := geo.PolylineFromCoords(coords)
	greatCircleKm := geo.GreatCircleDistance(coords[0], coords[len(coords)-1])
	return pathPolyline, greatCircleKm
}

type RouteQuery struct {
	Index  int
	Origin string
	Dest   string
}

type BatchRouteResult struct {
	Index int
	Path  datastructure.SearchPath
	Found bool
}

// BatchRoute computes many independent queries through a worker pool.
// Every query gets a freshly-preallocated searcher with its own
// visitation side table, so workers never contend on search state.
// Results come back ordered by query index; a query without a route is
// reported with Found=false, never as a batch failure.
func (rs *RoutingService) BatchRoute(queries []RouteQuery, method pkg.SearchMethod) []BatchRouteResult {
	pool := concurrent.NewWorkerPool[RouteQuery, BatchRouteResult](
		util.MinInt(rs.batchWorkers, util.MaxInt(len(queries), 1)), len(queries))

	pool.Start(func(q RouteQuery) BatchRouteResult {
		path, err := rs.engine.Route(q.Origin, q.Dest, method)
		if err != nil {
			return BatchRouteResult{Index: q.Index, Found: false}
		}
		return BatchRouteResult{Index: q.Index, Path: path, Found: true}
	})
	for _, q := range queries {
		pool.AddJob(q)
	}
	pool.Close()
	pool.Wait()

	results := make([]BatchRouteResult, 0, len(queries))
	for res := range pool.CollectResults() {
		results = append(results, res)
	}
	slices.SortFunc(results, func(a, b BatchRouteResult) int {
		return a.Index - b.Index
	})
	return results
}

// NearestLocation snaps a query coordinate to the closest location that
// appears in the flight graph.
func (rs *RoutingService) NearestLocation(qLat, qLon float64) (string, geo.Coordinate, float64, error) {
	point, distKm, ok := rs.spatialIndex.NearestLocation(qLat, qLon)
	if !ok {
		return "", geo.Coordinate{}, 0, util.WrapErrorf(ErrNoNearbyLocation, util.ErrNotFound,
			"no known location near %f,%f", qLat, qLon)
	}
	return point.GetName(), point.GetCoordinate(), distKm, nil
}

// Locations returns every distinct location name of the graph, sorted.
func (rs *RoutingService) Locations() []string {
	locations := rs.engine.GetGraph().Locations()
	slices.Sort(locations)
	return locations
}

// AddFlight inserts one flight record. Intended for populating the
// graph before queries are served; searches running concurrently with
// an insert are not isolated from it.
func (rs *RoutingService) AddFlight(from, to string, distance int) error {
	err := rs.engine.GetGraph().Insert(from, to, distance)
	if err != nil {
		if errors.Is(err, datastructure.ErrCapacityExceeded) {
			return util.WrapErrorf(err, util.ErrConflict,
				"flight graph is full (capacity %d)", rs.engine.GetGraph().Capacity())
		}
		return err
	}
	rs.log.Info("flight inserted", zap.String("from", from), zap.String("to", to),
		zap.Int("distance", distance))
	return nil
}
