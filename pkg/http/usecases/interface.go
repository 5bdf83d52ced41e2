package usecases

import (
	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/spatialindex"
)

type RoutingEngine interface {
	Route(from, to string, method pkg.SearchMethod) (datastructure.SearchPath, error)
	GetGraph() *datastructure.FlightGraph
}

type SpatialIndex interface {
	NearestLocation(qLat, qLon float64) (spatialindex.LocationPoint, float64, bool)
	Coordinate(name string) (geo.Coordinate, bool)
}
