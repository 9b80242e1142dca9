package config

// FeedConfig configures the vehicle-position feed fetch.
type FeedConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
	StaleAfterMS        int    `yaml:"staleAfterMS" validate:"gte=0"`
}

// LocationConfig configures rider-position acquisition.
type LocationConfig struct {
	Provider  string  `yaml:"provider" validate:"omitempty,oneof=termux static"`
	TimeoutMS int     `yaml:"timeoutMS" validate:"gte=0"`
	Lat       float64 `yaml:"lat" validate:"omitempty,latitude"`
	Lon       float64 `yaml:"lon" validate:"omitempty,longitude"`
}

// MatcherConfig configures filtering and ranking. Zero values mean "no
// cutoff"; cutoffs are always chosen explicitly, never defaulted.
type MatcherConfig struct {
	Routes   []string `yaml:"routes"`
	RadiusKM float64  `yaml:"radiusKM" validate:"gte=0"`
	Count    int      `yaml:"count" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Feed     FeedConfig     `yaml:"feed"`
	Location LocationConfig `yaml:"location"`
	Matcher  MatcherConfig  `yaml:"matcher"`
}
