package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name listed in Config's env tags.
const EnvPrefix = "ECOTRACKER_"

// parseEnv overlays variables that are set; unset ones keep the current value.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
