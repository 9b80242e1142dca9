package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/geo"
	"ltc/nearby-buses/match"
)

// DefaultStaleAfter is how old feed data may be before the listing carries a
// staleness note. LTC's feed typically updates every 30 seconds; anything
// over a couple of minutes usually means the agency side is wedged.
const DefaultStaleAfter = 2 * time.Minute

// Report is everything the presenter needs for one invocation's output.
type Report struct {
	GeneratedAt time.Time
	Rider       geo.Coordinate
	Snapshot    *feed.Snapshot
	Routes      []string
	Results     []match.Result

	// StaleAfter overrides DefaultStaleAfter when positive.
	StaleAfter time.Duration

	// Header enables the context lines above the listing. Disabled when
	// output is piped so downstream tools get just the per-bus lines.
	Header bool
}

// Text writes the report to w, one line per result in the order given, or a
// distinct message when there is nothing to list.
func Text(w io.Writer, r Report) error {
	if r.Header {
		if err := writeHeader(w, r); err != nil {
			return err
		}
	}

	if r.Snapshot != nil && r.Snapshot.Empty() {
		_, err := fmt.Fprintln(w, "LTC reports no buses in service right now.")
		return err
	}
	if len(r.Results) == 0 {
		_, err := fmt.Fprintln(w, "No buses found within the requested range.")
		return err
	}

	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, Line(res)); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single result. Example:
//
//	Bus 02  1.234 km South West  heading North  ETA ~3m
func Line(res match.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bus %s", label(res.Vehicle))
	fmt.Fprintf(&b, "  %.3f km %s", res.DistanceKM, res.Direction)
	if res.Vehicle.HasBearing {
		fmt.Fprintf(&b, "  heading %s", geo.CompassDirection(res.Vehicle.Bearing))
	}
	if res.ETA > 0 {
		fmt.Fprintf(&b, "  ETA ~%s", formatETA(res.ETA))
	}
	return b.String()
}

func label(v feed.VehicleRecord) string {
	if v.RouteID != "" {
		return v.RouteID
	}
	return v.ID()
}

func writeHeader(w io.Writer, r Report) error {
	now := r.GeneratedAt
	if now.IsZero() {
		now = time.Now()
	}
	if _, err := fmt.Fprintln(w, now.Format(time.RFC1123)); err != nil {
		return err
	}

	if len(r.Routes) > 0 {
		word := "routes"
		if len(r.Routes) == 1 {
			word = "route"
		}
		if _, err := fmt.Fprintf(w, "Buses on %s %s near %s:\n", word, strings.Join(r.Routes, ", "), r.Rider); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Buses near %s:\n", r.Rider); err != nil {
			return err
		}
	}

	staleAfter := r.StaleAfter
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	if r.Snapshot != nil {
		if age := r.Snapshot.Age(now); age > staleAfter {
			if _, err := fmt.Fprintf(w, "Note: feed data is %s old.\n", age.Round(time.Second)); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatETA(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Round(time.Second).Seconds()))
	}
	return fmt.Sprintf("%dm", int(d.Round(time.Minute).Minutes()))
}
