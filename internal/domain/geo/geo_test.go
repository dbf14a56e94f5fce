package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 25.0330, Longitude: 121.5654},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9999, Longitude: 179.9999},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p), "distance from a point to itself: %+v", p)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	b := Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_LondonToParis(t *testing.T) {
	london := Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	paris := Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	// Known great-circle distance is roughly 343.5 km.
	assert.InDelta(t, 343.5, DistanceKm(london, paris), 1.0)
}

func TestDistanceKm_NearIdenticalPointsNoDomainError(t *testing.T) {
	a := Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	b := Coordinate{Latitude: 25.0330 + 1e-13, Longitude: 121.5654 - 1e-13}

	d := DistanceKm(a, b)
	assert.False(t, math.IsNaN(d))
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestDistanceMeters(t *testing.T) {
	a := Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	b := Coordinate{Latitude: 25.0425, Longitude: 121.5649}

	meters := DistanceMeters(a, b)
	assert.Greater(t, meters, 800)
	assert.Less(t, meters, 1500)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		latitude  string
		longitude string
		ok        bool
	}{
		{"valid", "25.0330", "121.5654", true},
		{"valid negative", "-33.8688", "151.2093", true},
		{"non numeric latitude", "abc", "121.5654", false},
		{"non numeric longitude", "25.0330", "xyz", false},
		{"both non numeric", "abc", "xyz", false},
		{"empty", "", "", false},
		{"latitude out of range", "91.0", "0", false},
		{"longitude out of range", "0", "-181.0", false},
		{"nan", "NaN", "0", false},
		{"infinity", "0", "+Inf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.latitude, tt.longitude)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCoordinateValid_Bounds(t *testing.T) {
	assert.True(t, Coordinate{Latitude: 90, Longitude: 180}.Valid())
	assert.True(t, Coordinate{Latitude: -90, Longitude: -180}.Valid())
	assert.False(t, Coordinate{Latitude: 90.0001, Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: 180.0001}.Valid())
	assert.False(t, Coordinate{Latitude: math.NaN(), Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: math.Inf(-1)}.Valid())
}
