package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-rewards/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the postgres
	// analytics sink (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ads configures ad units, cooldown and preloading (ADS_ prefix).
	Ads configs.Ads `envPrefix:"ADS_"`

	// Rewards holds per-kind limits (REWARDS_ prefix, then the kind, e.g.
	// REWARDS_STORY_UNLOCK_MAX_DAILY_ADS_SHOWN).
	Rewards configs.Rewards `envPrefix:"REWARDS_"`

	// Simulator configures the in-process ad platform (SIM_ prefix).
	Simulator configs.Simulator `envPrefix:"SIM_"`

	// Analytics configures the event sink (ANALYTICS_ prefix).
	Analytics configs.Analytics `envPrefix:"ANALYTICS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. Reward limits start from
// configs.DefaultRewards and are only overridden by variables that are set.
func Load() (Config, error) {
	cfg := Config{Rewards: configs.DefaultRewards()}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
