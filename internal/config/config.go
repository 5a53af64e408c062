package config

import (
	"github.com/caarlos0/env/v11"

	"simbu-console/internal/config/configs"
)

// Config aggregates all configuration sections of the console. Fields are
// populated from environment variables via caarlos0/env; nested structs use
// envPrefix so SIMBU_API_BASE_URL lands in API.BaseURL and so on. See the
// types in the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). Informational
	// only; it ends up in log attributes.
	Env string `env:"ENV" envDefault:"prod"`

	// API holds the backend connection settings, prefix SIMBU_API_.
	API configs.API `envPrefix:"API_"`

	// Log configures the structured logger, prefix SIMBU_LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store configures local credential storage, prefix SIMBU_STORE_.
	Store configs.Store `envPrefix:"STORE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SIMBU_"}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
