package controllers

import (
	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/http/usecases"
)

type RoutingService interface {
	Route(from, to string, method pkg.SearchMethod) (datastructure.SearchPath, string, float64, error)
	BatchRoute(queries []usecases.RouteQuery, method pkg.SearchMethod) []usecases.BatchRouteResult
	NearestLocation(qLat, qLon float64) (string, geo.Coordinate, float64, error)
	Locations() []string
	AddFlight(from, to string, distance int) error
}
