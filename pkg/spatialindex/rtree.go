package spatialindex

import (
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// LocationPoint is one named location with its registered coordinate.
type LocationPoint struct {
	name  string
	coord geo.Coordinate
}

func (lp LocationPoint) GetName() string {
	return lp.name
}

func (lp LocationPoint) GetCoordinate() geo.Coordinate {
	return lp.coord
}

func newLocationPoint(name string, coord geo.Coordinate) LocationPoint {
	return LocationPoint{
		name:  name,
		coord: coord,
	}
}

type Rtree struct {
	tr     *rtree.RTreeG[LocationPoint]
	coords map[string]geo.Coordinate
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[LocationPoint]
	return &Rtree{
		tr:     &tr,
		coords: make(map[string]geo.Coordinate),
	}
}

// Build. index every registered location as a point leaf.
func (rt *Rtree) Build(locations map[string]geo.Coordinate, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("locations", len(locations)))
	for name, coord := range locations {
		rt.coords[name] = coord
		rt.tr.Insert([2]float64{coord.Lon, coord.Lat}, [2]float64{coord.Lon, coord.Lat},
			newLocationPoint(name, coord))
	}
	log.Info("R-tree spatial index built.")
}

// Coordinate returns the registered coordinate of a location name.
func (rt *Rtree) Coordinate(name string) (geo.Coordinate, bool) {
	c, ok := rt.coords[name]
	return c, ok
}

// SearchWithinRadius search for all locations within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []LocationPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]LocationPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data LocationPoint) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestLocation snaps a query point to the closest registered
// location, growing the search box until something is hit.
func (rt *Rtree) NearestLocation(qLat, qLon float64) (LocationPoint, float64, bool) {
	for _, radius := range []float64{100, 500, 2500, 10000, 21000} {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := geo.CalculateHaversineDistance(qLat, qLon, best.coord.Lat, best.coord.Lon)
		for _, cand := range candidates[1:] {
			dist := geo.CalculateHaversineDistance(qLat, qLon, cand.coord.Lat, cand.coord.Lon)
			if dist < bestDist {
				best = cand
				bestDist = dist
			}
		}
		return best, bestDist, true
	}
	return LocationPoint{}, 0, false
}
