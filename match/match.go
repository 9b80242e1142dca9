package match

import (
	"sort"
	"strings"
	"time"

	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/geo"
)

// Policy controls filtering and ranking. The zero value applies no cutoff at
// all; callers choose cutoffs explicitly.
type Policy struct {
	// Routes restricts results to these route ids (after NormalizeRoute).
	// Empty means all routes.
	Routes []string

	// RadiusKM drops vehicles farther than this many kilometers.
	// 0 disables the radius cutoff.
	RadiusKM float64

	// Count keeps only the N closest vehicles. 0 disables the cutoff.
	Count int
}

// Result pairs a vehicle with its computed relation to the rider.
type Result struct {
	Vehicle    feed.VehicleRecord
	DistanceKM float64

	// Direction is the compass direction from the rider toward the bus.
	Direction string

	// ETA is a straight-line estimate from the vehicle's reported speed;
	// 0 when the feed reported no usable speed.
	ETA time.Duration
}

// NormalizeRoute pads a route id to LTC's two-digit form ("2" -> "02").
// Non-numeric or already-long ids pass through untouched.
func NormalizeRoute(route string) string {
	r := strings.TrimSpace(route)
	if len(r) == 1 && r >= "0" && r <= "9" {
		return "0" + r
	}
	return r
}

// NormalizeRoutes normalizes each entry and drops blanks.
func NormalizeRoutes(routes []string) []string {
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		if n := NormalizeRoute(r); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Match computes each vehicle's distance from the rider, applies the policy,
// and returns results sorted ascending by distance. Ties are broken by route
// id, then by vehicle identity, so identical inputs always produce identical
// output. An empty result is a valid outcome.
func Match(rider geo.Coordinate, snapshot *feed.Snapshot, policy Policy) []Result {
	wanted := routeSet(policy.Routes)

	results := make([]Result, 0, len(snapshot.Vehicles))
	for _, v := range snapshot.Vehicles {
		if wanted != nil {
			if _, ok := wanted[NormalizeRoute(v.RouteID)]; !ok {
				continue
			}
		}
		d := geo.HaversineKM(rider, v.Position)
		if policy.RadiusKM > 0 && d > policy.RadiusKM {
			continue
		}
		r := Result{
			Vehicle:    v,
			DistanceKM: d,
			Direction:  geo.CompassDirection(geo.Azimuth(rider, v.Position)),
		}
		if v.HasSpeed && v.SpeedMS > 0 {
			r.ETA = time.Duration(d * 1000 / v.SpeedMS * float64(time.Second))
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.DistanceKM != b.DistanceKM {
			return a.DistanceKM < b.DistanceKM
		}
		if a.Vehicle.RouteID != b.Vehicle.RouteID {
			return a.Vehicle.RouteID < b.Vehicle.RouteID
		}
		return a.Vehicle.ID() < b.Vehicle.ID()
	})

	if policy.Count > 0 && len(results) > policy.Count {
		results = results[:policy.Count]
	}
	return results
}

func routeSet(routes []string) map[string]struct{} {
	if len(routes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		set[NormalizeRoute(r)] = struct{}{}
	}
	return set
}
