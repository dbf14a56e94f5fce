// Package geo provides the shared great-circle distance routine and
// coordinate helpers. Search radius filtering and address verification both
// go through DistanceKm so the two can never drift apart.
package geo

import (
	"math"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is a finite point on Earth.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Parse converts latitude/longitude strings into a Coordinate.
// The second return value is false when either component does not parse to a
// finite number or the point is off Earth; callers on passive search paths
// treat that as "unlocatable", not as an error.
func Parse(latitude, longitude string) (Coordinate, bool) {
	lat, latErr := strconv.ParseFloat(latitude, 64)
	lon, lonErr := strconv.ParseFloat(longitude, 64)
	if latErr != nil || lonErr != nil {
		return Coordinate{}, false
	}

	coord := Coordinate{Latitude: lat, Longitude: lon}

	return coord, coord.Valid()
}

// DistanceKm returns the great-circle distance between two points in
// kilometers using the Haversine formula. The asin argument is clamped to 1
// so that two effectively identical points cannot produce a domain error.
func DistanceKm(from, to Coordinate) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	deltaLat := (to.Latitude - from.Latitude) * math.Pi / 180
	deltaLon := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// DistanceMeters returns DistanceKm rounded to whole meters.
func DistanceMeters(from, to Coordinate) int {
	return int(math.Round(DistanceKm(from, to) * 1000))
}
