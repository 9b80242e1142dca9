package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ltc/nearby-buses/config"
	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/geo"
	"ltc/nearby-buses/locate"
	"ltc/nearby-buses/match"
	"ltc/nearby-buses/render"
)

type options struct {
	configPath      string
	routes          []string
	radiusKM        float64
	count           int
	feedURL         string
	feedTimeout     time.Duration
	locationTimeout time.Duration
	provider        string
	lat             float64
	lon             float64
	noHeader        bool
}

// merge folds changed flags over the loaded configuration. Only flags the
// rider actually set override the file, so a configured cutoff survives an
// invocation that sets unrelated flags.
func (o options) merge(cfg config.AppConfig, flags *pflag.FlagSet) config.AppConfig {
	if flags.Changed("routes") {
		cfg.Matcher.Routes = o.routes
	}
	if flags.Changed("radius-km") {
		cfg.Matcher.RadiusKM = o.radiusKM
	}
	if flags.Changed("count") {
		cfg.Matcher.Count = o.count
	}
	if flags.Changed("url") {
		cfg.Feed.VehiclePositionsURL = o.feedURL
	}
	if flags.Changed("feed-timeout") {
		cfg.Feed.TimeoutMS = int(o.feedTimeout / time.Millisecond)
	}
	if flags.Changed("location-timeout") {
		cfg.Location.TimeoutMS = int(o.locationTimeout / time.Millisecond)
	}
	if flags.Changed("provider") {
		cfg.Location.Provider = o.provider
	}
	if flags.Changed("lat") || flags.Changed("lon") {
		cfg.Location.Lat = o.lat
		cfg.Location.Lon = o.lon
		if !flags.Changed("provider") {
			cfg.Location.Provider = locate.ProviderStatic
		}
	}
	return cfg
}

func newProvider(cfg config.LocationConfig) (locate.Provider, error) {
	switch cfg.Provider {
	case locate.ProviderTermux:
		return locate.TermuxProvider{}, nil
	case locate.ProviderStatic:
		return locate.StaticProvider{Coordinate: geo.Coordinate{Lat: cfg.Lat, Lon: cfg.Lon}}, nil
	default:
		return nil, fmt.Errorf("unknown location provider %q", cfg.Provider)
	}
}

func run(ctx context.Context, cmd *cobra.Command, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = opts.merge(cfg, cmd.Flags())

	provider, err := newProvider(cfg.Location)
	if err != nil {
		return err
	}
	client := feed.NewClient(time.Duration(cfg.Feed.TimeoutMS) * time.Millisecond)

	rider, snap, err := acquire(ctx, provider, client, cfg)
	if err != nil {
		return err
	}

	policy := match.Policy{
		Routes:   match.NormalizeRoutes(cfg.Matcher.Routes),
		RadiusKM: cfg.Matcher.RadiusKM,
		Count:    cfg.Matcher.Count,
	}
	results := match.Match(rider, snap, policy)

	report := render.Report{
		GeneratedAt: time.Now(),
		Rider:       rider,
		Snapshot:    snap,
		Routes:      policy.Routes,
		Results:     results,
		StaleAfter:  time.Duration(cfg.Feed.StaleAfterMS) * time.Millisecond,
		Header:      !opts.noHeader && isatty.IsTerminal(os.Stdout.Fd()),
	}
	return render.Text(stdout, report)
}

// acquire runs location and feed acquisition concurrently, each under its
// own timeout, and waits for both. Neither input depends on the other, and
// proximity needs both, so a failure in either fails the invocation without
// partial output; the surviving result is simply discarded.
func acquire(ctx context.Context, provider locate.Provider, client *feed.Client, cfg config.AppConfig) (geo.Coordinate, *feed.Snapshot, error) {
	type locResult struct {
		rider geo.Coordinate
		err   error
	}
	type feedResult struct {
		snap *feed.Snapshot
		err  error
	}

	locCh := make(chan locResult, 1)
	go func() {
		locCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Location.TimeoutMS)*time.Millisecond)
		defer cancel()
		rider, err := provider.Current(locCtx)
		locCh <- locResult{rider, err}
	}()

	feedCh := make(chan feedResult, 1)
	go func() {
		feedCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Feed.TimeoutMS)*time.Millisecond)
		defer cancel()
		snap, err := client.FetchSnapshot(feedCtx, cfg.Feed.VehiclePositionsURL)
		feedCh <- feedResult{snap, err}
	}()

	loc := <-locCh
	fr := <-feedCh
	if loc.err != nil {
		return geo.Coordinate{}, nil, loc.err
	}
	if fr.err != nil {
		return geo.Coordinate{}, nil, fr.err
	}
	return loc.rider, fr.snap, nil
}
