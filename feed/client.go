package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultVehiclePositionsURL is LTC's open-data endpoint for live vehicle
// positions. Terms of use: https://www.londontransit.ca/open-data/
const DefaultVehiclePositionsURL = "http://gtfs.ltconline.ca/Vehicle/VehiclePositions.json"

// Sentinel errors distinguishing the two true failure modes of a fetch.
// An empty feed is not an error; see Snapshot.Empty.
var (
	ErrUnreachable = errors.New("vehicle feed unreachable")
	ErrMalformed   = errors.New("vehicle feed malformed")
)

// Client fetches vehicle-position snapshots over HTTP. It keeps no state
// between fetches.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a feed client whose requests are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		// Public open-data endpoints sometimes block Go's default agent.
		userAgent: "ltc-nearby/1.0",
	}
}

// FetchSnapshot issues one GET to url and parses the response into a
// Snapshot. Network and HTTP-status failures wrap ErrUnreachable;
// undecodable payloads wrap ErrMalformed. Individual records that fail
// validation are dropped, not fatal.
func (c *Client) FetchSnapshot(ctx context.Context, url string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url %s: %v", ErrUnreachable, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrUnreachable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	snap, err := ParseSnapshot(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	snap.FetchedAt = time.Now()
	return snap, nil
}
