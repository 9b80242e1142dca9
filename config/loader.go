package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ltc/nearby-buses/feed"
	"ltc/nearby-buses/locate"
)

// Default values applied after loading. Timeouts mirror the bounds the LTC
// feed and termux-location realistically need.
const (
	DefaultFeedTimeoutMS     = 30000
	DefaultLocationTimeoutMS = 30000
)

// Load reads configuration from path. An empty path searches the default
// locations; a missing file there is fine and yields the defaults. An
// explicit path that cannot be read is an error.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig

	paths := []string{path}
	if path == "" {
		paths = []string{"ltc-nearby.yml", os.ExpandEnv("$HOME/.config/ltc-nearby/config.yml")}
	}

	var data []byte
	var err error
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" && errors.Is(err, os.ErrNotExist) {
			return applyDefaults(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return applyDefaults(cfg), nil
}

func applyDefaults(cfg AppConfig) AppConfig {
	if cfg.Feed.VehiclePositionsURL == "" {
		cfg.Feed.VehiclePositionsURL = feed.DefaultVehiclePositionsURL
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = DefaultFeedTimeoutMS
	}
	if cfg.Location.TimeoutMS == 0 {
		cfg.Location.TimeoutMS = DefaultLocationTimeoutMS
	}
	if cfg.Location.Provider == "" {
		cfg.Location.Provider = locate.ProviderTermux
	}
	return cfg
}
