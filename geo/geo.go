package geo

import (
	"fmt"
	"math"
	"time"
)

// EarthRadiusKM is the mean earth radius used for great-circle distances.
const EarthRadiusKM = 6371.0

// Coordinate is a point on earth in decimal degrees. AccuracyM and Timestamp
// are optional metadata carried along from whichever source produced the
// reading; zero values mean "unknown".
type Coordinate struct {
	Lat       float64
	Lon       float64
	AccuracyM float64
	Timestamp time.Time
}

// String returns the coordinate as "(lat, lon)" with full precision.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}

// Valid reports whether the coordinate lies within plausible bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// HaversineKM returns the great-circle distance between a and b in
// kilometers. Haversine is well conditioned near zero distance, so two
// identical coordinates yield exactly 0.
func HaversineKM(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKM * c
}

// Azimuth returns the initial bearing in degrees [0, 360) when facing `to`
// from `from`. 0 is due north, 90 due east.
func Azimuth(from, to Coordinate) float64 {
	lat1 := from.Lat * math.Pi / 180
	lon1 := from.Lon * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	lon2 := to.Lon * math.Pi / 180

	dLon := lon2 - lon1
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

var compassNames = [...]string{
	"North",
	"North East",
	"East",
	"South East",
	"South",
	"South West",
	"West",
	"North West",
}

// CompassDirection maps a bearing in degrees to one of the eight compass
// names. Each direction owns a 45 degree arc centered on it, so North covers
// 337.5 up to 22.5.
func CompassDirection(degrees float64) string {
	arc := 360.0 / float64(len(compassNames))
	shifted := math.Mod(math.Mod(degrees+arc/2, 360)+360, 360)
	idx := int(float64(len(compassNames)) * shifted / 360)
	return compassNames[idx]
}
