package config

import "github.com/kelseyhightower/envconfig"

// Config is the process's environment-derived configuration. All fields
// have defaults, so a bare process start (no env vars set) is valid.
type Config struct {
	// LogLevel is parsed by logrus.ParseLevel in cmd/busnet.
	LogLevel string `envconfig:"BUSNET_LOG_LEVEL" default:"info"`

	// StrictLayers makes cmd/busnet fail at startup, before the catalog is
	// built, on an unknown render_settings layer name instead of letting
	// map rendering silently skip it.
	StrictLayers bool `envconfig:"BUSNET_STRICT_LAYERS" default:"false"`

	// WorkerCount caps how many stat_requests answers are computed
	// concurrently (spec.md §5 "parallel profile"). 0 means unbounded —
	// one goroutine per request.
	WorkerCount int `envconfig:"BUSNET_WORKERS" default:"0"`
}

// Load reads Config from the environment, applying defaults for unset
// variables.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
