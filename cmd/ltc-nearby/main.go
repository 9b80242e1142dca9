package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/locate"
)

// Exit codes. Each true failure kind gets its own code so wrappers can react
// without parsing stderr.
const (
	exitOK                  = 0
	exitUsage               = 1
	exitLocationUnavailable = 2
	exitFeedUnreachable     = 3
	exitFeedMalformed       = 4
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "ltc-nearby",
	Short: "list nearby LTC buses by distance from your position",
	Long: `
ltc-nearby locates London Transit Commission buses near you. It reads your
position from the device location service (or a fixed --lat/--lon), fetches
LTC's live vehicle-position feed, and prints the buses ranked by distance.

The raw data is available from LTC under their terms of use:
https://www.londontransit.ca/open-data/
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd, os.Stdout)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	f.StringSliceVar(&opts.routes, "routes", nil, "only show these routes (e.g. 2,10); empty shows all")
	f.Float64Var(&opts.radiusKM, "radius-km", 0, "only show buses within this distance; 0 means no radius cutoff")
	f.IntVar(&opts.count, "count", 0, "only show the N closest buses; 0 means no count cutoff")
	f.StringVar(&opts.feedURL, "url", "", "vehicle-positions feed URL (default "+feed.DefaultVehiclePositionsURL+")")
	f.DurationVar(&opts.feedTimeout, "feed-timeout", 0, "bound on the feed fetch (default 30s)")
	f.DurationVar(&opts.locationTimeout, "location-timeout", 0, "bound on location acquisition (default 30s)")
	f.StringVar(&opts.provider, "provider", "", "location provider: termux or static")
	f.Float64Var(&opts.lat, "lat", 0, "fixed latitude (implies --provider static)")
	f.Float64Var(&opts.lon, "lon", 0, "fixed longitude (implies --provider static)")
	f.BoolVar(&opts.noHeader, "no-header", false, "print only the per-bus lines")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Print(riderMessage(err))
		os.Exit(exitCode(err))
	}
}

// riderMessage maps an error to the actionable wording shown on stderr.
func riderMessage(err error) string {
	switch {
	case errors.Is(err, locate.ErrUnavailable):
		return fmt.Sprintf("Could not read your position (%v).\n"+
			"Enable the device location service, grant the location permission, and try again.\n"+
			"Without a device fix you can pass --lat and --lon instead.", err)
	case errors.Is(err, feed.ErrUnreachable):
		return fmt.Sprintf("Could not reach the LTC vehicle feed (%v).\n"+
			"The agency endpoint may be down; try again in a minute.", err)
	case errors.Is(err, feed.ErrMalformed):
		return fmt.Sprintf("The LTC vehicle feed sent data this tool could not read (%v).\n"+
			"If this persists the feed format may have changed.", err)
	default:
		return err.Error()
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, locate.ErrUnavailable):
		return exitLocationUnavailable
	case errors.Is(err, feed.ErrUnreachable):
		return exitFeedUnreachable
	case errors.Is(err, feed.ErrMalformed):
		return exitFeedMalformed
	default:
		return exitUsage
	}
}
