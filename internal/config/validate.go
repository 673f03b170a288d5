package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"namesake/internal/name"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const maxWorkers = 256

var (
	logFormats = []string{"console", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if m.Threshold < 0 || m.Threshold > 100 {
		return invalid("matching.threshold must be between 0 and 100 (got %d)", m.Threshold)
	}
	if m.RomanizationScore < 0 || m.RomanizationScore > 100 {
		return invalid("matching.romanization_score must be between 0 and 100 (got %d)", m.RomanizationScore)
	}
	if _, ok := name.AggregateByName(m.Aggregate); !ok {
		return invalid("matching.aggregate must be one of %s (got %q)", strings.Join(name.AggregateNames(), ", "), m.Aggregate)
	}
	if m.Workers < 1 || m.Workers > maxWorkers {
		return invalid("matching.workers must be between 1 and %d (got %d)", maxWorkers, m.Workers)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return invalid("catalog.path is required")
	}
	if c.Catalog.LockTimeout < 0 {
		return invalid("catalog.lock_timeout must not be negative (got %d)", c.Catalog.LockTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logFormats, c.Logging.Format) {
		return invalid("logging.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Logging.Format)
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		return invalid("logging.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Logging.Level)
	}
	return nil
}
