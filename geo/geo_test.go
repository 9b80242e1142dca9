package geo

import (
	"math"
	"testing"
)

func TestHaversineSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
	}{
		{"downtown to north end", Coordinate{Lat: 42.9849, Lon: -81.2453}, Coordinate{Lat: 43.0204, Lon: -81.2737}},
		{"across the meridian", Coordinate{Lat: 51.5, Lon: -0.1}, Coordinate{Lat: 51.5, Lon: 0.1}},
		{"hemispheres", Coordinate{Lat: -33.9, Lon: 151.2}, Coordinate{Lat: 42.98, Lon: -81.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := HaversineKM(tt.a, tt.b)
			ba := HaversineKM(tt.b, tt.a)
			if ab != ba {
				t.Errorf("distance not symmetric: %v vs %v", ab, ba)
			}
			if ab < 0 {
				t.Errorf("negative distance %v", ab)
			}
		})
	}
}

func TestHaversineIdentity(t *testing.T) {
	p := Coordinate{Lat: 42.9849, Lon: -81.2453}
	if d := HaversineKM(p, p); d != 0 {
		t.Errorf("distance to self = %v, want exactly 0", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One hundredth of a degree of latitude is ~1.112 km on a 6371 km sphere.
	a := Coordinate{Lat: 43.00, Lon: -81.25}
	b := Coordinate{Lat: 43.01, Lon: -81.25}
	got := HaversineKM(a, b)
	want := EarthRadiusKM * 0.01 * math.Pi / 180
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("HaversineKM = %v, want %v", got, want)
	}
}

func TestAzimuthCardinal(t *testing.T) {
	origin := Coordinate{Lat: 43.0, Lon: -81.25}
	tests := []struct {
		name  string
		to    Coordinate
		want  float64
		delta float64
	}{
		{"due north", Coordinate{Lat: 44.0, Lon: -81.25}, 0, 0.01},
		{"due south", Coordinate{Lat: 42.0, Lon: -81.25}, 180, 0.01},
		// Initial bearing along a parallel deviates slightly from 90/270
		// at this latitude.
		{"east", Coordinate{Lat: 43.0, Lon: -80.25}, 90, 1.0},
		{"west", Coordinate{Lat: 43.0, Lon: -82.25}, 270, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Azimuth(origin, tt.to)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("Azimuth = %v, want %v +/- %v", got, tt.want, tt.delta)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Azimuth %v out of [0, 360)", got)
			}
		})
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "North"},
		{22.4, "North"},
		{22.5, "North East"},
		{45, "North East"},
		{90, "East"},
		{135, "South East"},
		{180, "South"},
		{225, "South West"},
		{270, "West"},
		{315, "North West"},
		{337.4, "North West"},
		{337.5, "North"},
		{359.9, "North"},
		{360, "North"},
		{-45, "North West"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := CompassDirection(tt.degrees); got != tt.want {
				t.Errorf("CompassDirection(%v) = %q, want %q", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"london ontario", Coordinate{Lat: 42.9849, Lon: -81.2453}, true},
		{"poles", Coordinate{Lat: 90, Lon: 180}, true},
		{"lat too big", Coordinate{Lat: 91, Lon: 0}, false},
		{"lon too small", Coordinate{Lat: 0, Lon: -181}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
