package config

import "namesake/internal/name"

const (
	defaultConfigPath        = "~/.config/namesake/config.toml"
	defaultProjectConfig     = "namesake.toml"
	defaultCatalogPath       = "~/.local/share/namesake/catalog.db"
	defaultCatalogLockWait   = 10
	defaultMatchAggregate    = "max"
	defaultMatchWorkers      = 4
	defaultMatchOtherVersion = true
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	catalogEnvVar = "NAMESAKE_CATALOG"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matching: Matching{
			Threshold:         name.DefaultThreshold,
			RomanizationScore: name.DefaultRomanizationScore,
			Aggregate:         defaultMatchAggregate,
			OtherVersions:     defaultMatchOtherVersion,
			Workers:           defaultMatchWorkers,
		},
		Catalog: Catalog{
			LockTimeout: defaultCatalogLockWait,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
