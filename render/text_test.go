package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/geo"
	"ltc/nearby-buses/match"
)

func result(route string, distKM float64, direction string) match.Result {
	return match.Result{
		Vehicle:    feed.VehicleRecord{VehicleID: "3001", RouteID: route},
		DistanceKM: distKM,
		Direction:  direction,
	}
}

func TestTextOneLinePerResult(t *testing.T) {
	var sb strings.Builder
	snap := &feed.Snapshot{Vehicles: []feed.VehicleRecord{{VehicleID: "3001"}, {VehicleID: "3002"}}}
	err := Text(&sb, Report{
		Snapshot: snap,
		Results: []match.Result{
			result("02", 0.532, "North"),
			result("10", 2.104, "South West"),
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Bus 02  0.532 km North", lines[0])
	require.Equal(t, "Bus 10  2.104 km South West", lines[1])
}

func TestTextEmptyFeedVersusNoMatches(t *testing.T) {
	var empty strings.Builder
	require.NoError(t, Text(&empty, Report{Snapshot: &feed.Snapshot{}}))
	require.Contains(t, empty.String(), "no buses in service")

	var noMatch strings.Builder
	snap := &feed.Snapshot{Vehicles: []feed.VehicleRecord{{VehicleID: "3001"}}}
	require.NoError(t, Text(&noMatch, Report{Snapshot: snap}))
	require.Contains(t, noMatch.String(), "No buses found within the requested range")
}

func TestLineIncludesHeadingAndETA(t *testing.T) {
	res := match.Result{
		Vehicle: feed.VehicleRecord{
			VehicleID:  "3001",
			RouteID:    "06",
			Bearing:    180,
			HasBearing: true,
		},
		DistanceKM: 1.5,
		Direction:  "East",
		ETA:        150 * time.Second,
	}
	line := Line(res)
	require.Equal(t, "Bus 06  1.500 km East  heading South  ETA ~3m", line)
}

func TestLineSubMinuteETA(t *testing.T) {
	res := result("02", 0.1, "North")
	res.ETA = 42 * time.Second
	require.Contains(t, Line(res), "ETA ~42s")
}

func TestLineFallsBackToVehicleID(t *testing.T) {
	res := match.Result{
		Vehicle:    feed.VehicleRecord{VehicleID: "3001"},
		DistanceKM: 0.5,
		Direction:  "North",
	}
	require.Equal(t, "Bus 3001  0.500 km North", Line(res))
}

func TestHeaderListsRoutesAndStaleness(t *testing.T) {
	now := time.Unix(1700000300, 0)
	snap := &feed.Snapshot{
		HeaderTimestamp: time.Unix(1700000000, 0), // five minutes old
		FetchedAt:       now,
		Vehicles:        []feed.VehicleRecord{{VehicleID: "3001"}},
	}
	var sb strings.Builder
	err := Text(&sb, Report{
		GeneratedAt: now,
		Rider:       geo.Coordinate{Lat: 42.9849, Lon: -81.2453},
		Snapshot:    snap,
		Routes:      []string{"02", "10"},
		Results:     []match.Result{result("02", 0.5, "North")},
		Header:      true,
	})
	require.NoError(t, err)

	out := sb.String()
	require.Contains(t, out, "Buses on routes 02, 10 near (42.9849, -81.2453):")
	require.Contains(t, out, "feed data is 5m0s old")
}

func TestHeaderSingularRouteNoStaleNote(t *testing.T) {
	now := time.Unix(1700000030, 0)
	snap := &feed.Snapshot{
		HeaderTimestamp: time.Unix(1700000000, 0),
		FetchedAt:       now,
		Vehicles:        []feed.VehicleRecord{{VehicleID: "3001"}},
	}
	var sb strings.Builder
	err := Text(&sb, Report{
		GeneratedAt: now,
		Rider:       geo.Coordinate{Lat: 42.9849, Lon: -81.2453},
		Snapshot:    snap,
		Routes:      []string{"02"},
		Results:     []match.Result{result("02", 0.5, "North")},
		Header:      true,
	})
	require.NoError(t, err)

	out := sb.String()
	require.Contains(t, out, "Buses on route 02 near")
	require.NotContains(t, out, "feed data is")
}
