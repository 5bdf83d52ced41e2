package geo

import (
	"github.com/golang/geo/s2"
)

// GreatCircleDistance returns the great-circle distance between two
// coordinates in km, computed on the s2 sphere. Used as the
// straight-line baseline next to the summed leg distances of a route.
func GreatCircleDistance(a, b Coordinate) float64 {
	aLatLng := s2.LatLngFromDegrees(a.Lat, a.Lon)
	bLatLng := s2.LatLngFromDegrees(b.Lat, b.Lon)

	return aLatLng.Distance(bLatLng).Radians() * earthRadiusKM
}
