package locate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"ltc/nearby-buses/geo"
)

// TermuxProvider reads the device position through the termux-location
// helper available inside Termux on Android. The helper prints one JSON
// object and exits; it blocks until the device produces a fix, so the
// context deadline is the only bound on the wait.
type TermuxProvider struct {
	// Command overrides the binary to run. Empty means "termux-location".
	Command string
}

type termuxReading struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Current runs the helper once and parses its reading. All failure modes
// (helper missing, permission denied, timeout, unparseable output,
// implausible coordinate) wrap ErrUnavailable.
func (p TermuxProvider) Current(ctx context.Context) (geo.Coordinate, error) {
	name := p.Command
	if name == "" {
		name = "termux-location"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return geo.Coordinate{}, fmt.Errorf("%w: %s timed out", ErrUnavailable, name)
		}
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return geo.Coordinate{}, fmt.Errorf("%w: %s: %s", ErrUnavailable, name, msg)
		}
		return geo.Coordinate{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}

	var r termuxReading
	if err := json.Unmarshal(stdout.Bytes(), &r); err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: unparseable %s output: %v", ErrUnavailable, name, err)
	}

	c := geo.Coordinate{
		Lat:       r.Latitude,
		Lon:       r.Longitude,
		AccuracyM: r.Accuracy,
		Timestamp: time.Now(),
	}
	if !c.Valid() || (c.Lat == 0 && c.Lon == 0) {
		return geo.Coordinate{}, fmt.Errorf("%w: %s reported no fix", ErrUnavailable, name)
	}
	return c, nil
}
