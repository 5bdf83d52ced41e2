package geo

import (
	"math"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

const (
	earthRadiusKM = 6371.0
)

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	h := havFunction(latTwo-latOne) +
		math.Cos(latOne)*math.Cos(latTwo)*havFunction(longTwo-longOne)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

func radToDeg(rad float64) float64 {
	return 180.0 * rad / math.Pi
}

func normalizeLongitude(lon float64) float64 {
	return math.Mod(lon+540, 360) - 180
}

// GetDestinationPoint returns the point dist km away from (lat1, lon1)
// along the initial bearing (in degrees). Used to span bounding box
// corners for spatial index queries.
// https://www.movable-type.co.uk/scripts/latlong.html
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {
	dr := dist / earthRadiusKM

	bearing = degreeToRadians(bearing)
	lat1 = degreeToRadians(lat1)
	lon1 = degreeToRadians(lon1)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(dr) +
		math.Cos(lat1)*math.Sin(dr)*math.Cos(bearing))

	lon2 := lon1 + math.Atan2(math.Sin(bearing)*math.Sin(dr)*math.Cos(lat1),
		math.Cos(dr)-(math.Sin(lat1)*math.Sin(lat2)))

	return radToDeg(lat2), normalizeLongitude(radToDeg(lon2))
}
