package controllers

import (
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/http/usecases"
)

type routeRequest struct {
	Origin      string `json:"origin" validate:"required,max=20"`
	Destination string `json:"destination" validate:"required,max=20"`
	Method      string `json:"method" validate:"omitempty,oneof=depth_first dfs lookahead bfs"`
}

type legResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type routeResponse struct {
	Legs          []legResponse `json:"legs"`
	Waypoints     []string      `json:"waypoints"`
	TotalDistance int           `json:"total_distance"`
	Polyline      string        `json:"polyline,omitempty"`
	GreatCircleKm float64       `json:"great_circle_km,omitempty"`
}

func NewRouteResponse(path datastructure.SearchPath, pathPolyline string, greatCircleKm float64) routeResponse {
	legs := make([]legResponse, 0, len(path.Legs))
	for _, leg := range path.Legs {
		legs = append(legs, legResponse{
			From:     leg.From,
			To:       leg.To,
			Distance: leg.Distance,
		})
	}
	return routeResponse{
		Legs:          legs,
		Waypoints:     path.Waypoints(),
		TotalDistance: path.TotalDistance,
		Polyline:      pathPolyline,
		GreatCircleKm: greatCircleKm,
	}
}

type batchRouteRequest struct {
	Method  string              `json:"method" validate:"omitempty,oneof=depth_first dfs lookahead bfs"`
	Queries []batchRouteQueryIn `json:"queries" validate:"required,min=1,max=100,dive"`
}

type batchRouteQueryIn struct {
	Origin      string `json:"origin" validate:"required,max=20"`
	Destination string `json:"destination" validate:"required,max=20"`
}

type batchRouteItemResponse struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	Found         bool          `json:"found"`
	Legs          []legResponse `json:"legs,omitempty"`
	TotalDistance int           `json:"total_distance"`
}

func NewBatchRouteResponse(queries []batchRouteQueryIn, results []usecases.BatchRouteResult) []batchRouteItemResponse {
	items := make([]batchRouteItemResponse, 0, len(results))
	for _, res := range results {
		item := batchRouteItemResponse{
			Origin:      queries[res.Index].Origin,
			Destination: queries[res.Index].Destination,
			Found:       res.Found,
		}
		if res.Found {
			for _, leg := range res.Path.Legs {
				item.Legs = append(item.Legs, legResponse{
					From:     leg.From,
					To:       leg.To,
					Distance: leg.Distance,
				})
			}
			item.TotalDistance = res.Path.TotalDistance
		}
		items = append(items, item)
	}
	return items
}

type addFlightRequest struct {
	From     string `json:"from" validate:"required,max=20"`
	To       string `json:"to" validate:"required,max=20"`
	Distance int    `json:"distance" validate:"min=0"`
}

type addFlightResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type nearestLocationRequest struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type nearestLocationResponse struct {
	Name       string         `json:"name"`
	Coordinate geo.Coordinate `json:"coordinate"`
	DistanceKm float64        `json:"distance_km"`
}

func NewNearestLocationResponse(name string, coord geo.Coordinate, distKm float64) nearestLocationResponse {
	return nearestLocationResponse{
		Name:       name,
		Coordinate: coord,
		DistanceKm: distKm,
	}
}

type locationsResponse struct {
	Locations []string `json:"locations"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
