// Package config loads, normalizes, and validates plagcheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// PLAGCHECK_TUPLE_LENGTH. Validation failures are tagged as configuration
// errors so the CLI can report them with the matching exit status.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
