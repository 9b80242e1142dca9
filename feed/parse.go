package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// ParseSnapshot decodes a raw feed payload into a Snapshot. The encoding is
// chosen from the Content-Type header when it is conclusive, otherwise by
// sniffing the payload (GTFS-RT JSON renditions always open with '{').
func ParseSnapshot(body []byte, contentType string) (*Snapshot, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrMalformed)
	}
	if looksJSON(body, contentType) {
		return parseJSON(body)
	}
	return parseProtobuf(body)
}

func looksJSON(body []byte, contentType string) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	if strings.Contains(contentType, "protobuf") || strings.Contains(contentType, "octet-stream") {
		return false
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// jsonNumber tolerates feeds that quote their numbers. LTC's JSON rendition
// has shipped both styles over the years.
type jsonNumber float64

func (n *jsonNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = jsonNumber(f)
	return nil
}

type jsonFeed struct {
	Header struct {
		Timestamp jsonNumber `json:"timestamp"`
	} `json:"header"`
	Entity []struct {
		ID      string `json:"id"`
		Vehicle *struct {
			Trip *struct {
				TripID  string `json:"trip_id"`
				RouteID string `json:"route_id"`
			} `json:"trip"`
			Position *struct {
				Latitude  jsonNumber  `json:"latitude"`
				Longitude jsonNumber  `json:"longitude"`
				Bearing   *jsonNumber `json:"bearing"`
				Speed     *jsonNumber `json:"speed"`
			} `json:"position"`
			Timestamp jsonNumber `json:"timestamp"`
			Vehicle   *struct {
				ID string `json:"id"`
			} `json:"vehicle"`
		} `json:"vehicle"`
	} `json:"entity"`
}

func parseJSON(body []byte) (*Snapshot, error) {
	var f jsonFeed
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	snap := &Snapshot{}
	if ts := int64(f.Header.Timestamp); ts > 0 {
		snap.HeaderTimestamp = time.Unix(ts, 0)
	}
	for _, e := range f.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil {
			snap.Dropped++
			continue
		}
		rec := VehicleRecord{
			Position: coordinate(float64(v.Position.Latitude), float64(v.Position.Longitude)),
		}
		if v.Trip != nil {
			rec.TripID = v.Trip.TripID
			rec.RouteID = v.Trip.RouteID
		}
		if v.Vehicle != nil {
			rec.VehicleID = v.Vehicle.ID
		}
		if v.Position.Bearing != nil {
			rec.Bearing = float64(*v.Position.Bearing)
			rec.HasBearing = true
		}
		if v.Position.Speed != nil {
			rec.SpeedMS = float64(*v.Position.Speed)
			rec.HasSpeed = true
		}
		if ts := int64(v.Timestamp); ts > 0 {
			rec.Timestamp = time.Unix(ts, 0)
		}
		if !validRecord(rec) {
			snap.Dropped++
			continue
		}
		snap.Vehicles = append(snap.Vehicles, rec)
	}
	return snap, nil
}

func parseProtobuf(body []byte) (*Snapshot, error) {
	fm := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(body, fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	snap := &Snapshot{}
	if fm.Header != nil && fm.Header.Timestamp != nil {
		if ts := int64(*fm.Header.Timestamp); ts > 0 {
			snap.HeaderTimestamp = time.Unix(ts, 0)
		}
	}
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil || v.Position.Latitude == nil || v.Position.Longitude == nil {
			snap.Dropped++
			continue
		}
		rec := VehicleRecord{
			Position: coordinate(float64(*v.Position.Latitude), float64(*v.Position.Longitude)),
		}
		if v.Trip != nil {
			if v.Trip.TripId != nil {
				rec.TripID = *v.Trip.TripId
			}
			if v.Trip.RouteId != nil {
				rec.RouteID = *v.Trip.RouteId
			}
		}
		if v.Vehicle != nil && v.Vehicle.Id != nil {
			rec.VehicleID = *v.Vehicle.Id
		}
		if v.Position.Bearing != nil {
			rec.Bearing = float64(*v.Position.Bearing)
			rec.HasBearing = true
		}
		if v.Position.Speed != nil {
			rec.SpeedMS = float64(*v.Position.Speed)
			rec.HasSpeed = true
		}
		if v.Timestamp != nil {
			if ts := int64(*v.Timestamp); ts > 0 {
				rec.Timestamp = time.Unix(ts, 0)
			}
		}
		if !validRecord(rec) {
			snap.Dropped++
			continue
		}
		snap.Vehicles = append(snap.Vehicles, rec)
	}
	return snap, nil
}
