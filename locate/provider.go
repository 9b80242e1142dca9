package locate

import (
	"context"
	"errors"
	"fmt"

	"ltc/nearby-buses/geo"
)

// ErrUnavailable is returned when no coordinate could be acquired: the
// device's location service is disabled, denied permission, timed out, or
// produced an unusable reading.
var ErrUnavailable = errors.New("location unavailable")

// Provider obtains exactly one rider coordinate per call. Implementations
// must honor the context deadline and must not retry internally.
type Provider interface {
	Current(ctx context.Context) (geo.Coordinate, error)
}

// Provider names accepted in configuration.
const (
	ProviderTermux = "termux"
	ProviderStatic = "static"
)

// StaticProvider returns a fixed coordinate. It backs the --lat/--lon flags
// and makes the rest of the pipeline testable without a device.
type StaticProvider struct {
	Coordinate geo.Coordinate
}

// Current returns the configured coordinate after bounds-checking it.
func (p StaticProvider) Current(_ context.Context) (geo.Coordinate, error) {
	if !p.Coordinate.Valid() {
		return geo.Coordinate{}, fmt.Errorf("%w: fixed coordinate %s out of bounds", ErrUnavailable, p.Coordinate)
	}
	return p.Coordinate, nil
}
