package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeMatching()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeMatching() {
	c.Matching.Aggregate = strings.ToLower(strings.TrimSpace(c.Matching.Aggregate))
	if c.Matching.Aggregate == "" {
		c.Matching.Aggregate = defaultMatchAggregate
	}
}

func (c *Config) normalizeCatalog() error {
	path := strings.TrimSpace(c.Catalog.Path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(catalogEnvVar))
	}
	if path == "" {
		path = defaultCatalogPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	c.Catalog.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
