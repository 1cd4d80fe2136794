package config

import (
	"fmt"
	"strings"

	"plagcheck/internal/faults"
)

// Validate ensures the configuration is usable. Every failure wraps
// faults.ErrConfiguration.
func (c *Config) Validate() error {
	if err := c.validateCompare(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCompare() error {
	if c.Compare.TupleLength <= 0 {
		return invalid("compare.tuple_length must be >= 1, got %d", c.Compare.TupleLength)
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.MinPercent < 0 {
		return invalid("scan.min_percent must be >= 0")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return invalid("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return invalid("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", faults.ErrConfiguration, fmt.Sprintf(format, args...))
}
