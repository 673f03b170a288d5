// Package config loads, normalizes, and validates namesake configuration data.
//
// It supplies defaults for matching thresholds, the reference catalog location,
// and logging, expands user paths (including tilde shortcuts), reads TOML
// files, and honours the NAMESAKE_CATALOG environment fallback.
//
// Always obtain settings through this package so commands receive sanitized
// paths, canonical enum values, and clear validation errors.
package config
