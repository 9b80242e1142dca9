package feed

import (
	"time"

	"ltc/nearby-buses/geo"
)

// VehicleRecord is one vehicle's position as reported by the agency,
// immutable once parsed.
type VehicleRecord struct {
	VehicleID string
	TripID    string
	RouteID   string
	Position  geo.Coordinate

	// Bearing is the direction the vehicle is facing, degrees clockwise
	// from north. Valid only when HasBearing is set.
	Bearing    float64
	HasBearing bool

	// SpeedMS is the vehicle's momentary speed in meters per second.
	// Valid only when HasSpeed is set.
	SpeedMS  float64
	HasSpeed bool

	Timestamp time.Time
}

// ID returns the record's identity for deterministic ordering: the vehicle
// id when present, otherwise the trip id.
func (v VehicleRecord) ID() string {
	if v.VehicleID != "" {
		return v.VehicleID
	}
	return v.TripID
}

// Snapshot is the full set of vehicle positions returned by one fetch. All
// records share the single FetchedAt timestamp; records from different
// fetches must never be mixed.
type Snapshot struct {
	// FetchedAt is when this process completed the fetch.
	FetchedAt time.Time

	// HeaderTimestamp is the feed's own header timestamp, zero when the
	// feed did not report one.
	HeaderTimestamp time.Time

	// Dropped counts records discarded by per-record validation.
	Dropped int

	Vehicles []VehicleRecord
}

// Empty reports whether the agency reported zero usable vehicles. This is a
// valid outcome, not an error.
func (s *Snapshot) Empty() bool {
	return len(s.Vehicles) == 0
}

// Age returns how old the feed's own data is relative to now, based on the
// header timestamp when present and the fetch time otherwise.
func (s *Snapshot) Age(now time.Time) time.Duration {
	ref := s.HeaderTimestamp
	if ref.IsZero() {
		ref = s.FetchedAt
	}
	return now.Sub(ref)
}

func coordinate(lat, lon float64) geo.Coordinate {
	return geo.Coordinate{Lat: lat, Lon: lon}
}

func validRecord(v VehicleRecord) bool {
	if v.ID() == "" {
		return false
	}
	if !v.Position.Valid() {
		return false
	}
	// (0, 0) is in the Atlantic; for a municipal feed it only ever means
	// an unset position.
	if v.Position.Lat == 0 && v.Position.Lon == 0 {
		return false
	}
	return true
}
