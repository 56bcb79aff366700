package config

import "time"

// Config holds runtime settings for the EcoTracker CLI.
type Config struct {
	ServerEndpointAddr string
	DatabaseFile       string
	RequestTimeout     time.Duration
	DownloadDir        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabaseFile = "ecotracker.db"
	c.RequestTimeout = 10 * time.Second
	c.DownloadDir = "reports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
