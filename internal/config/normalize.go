package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"plagcheck/internal/faults"
)

func (c *Config) normalize() error {
	if err := c.normalizeCompare(); err != nil {
		return err
	}
	c.normalizeScan()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeCompare() error {
	if value, ok := os.LookupEnv("PLAGCHECK_TUPLE_LENGTH"); ok && strings.TrimSpace(value) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: PLAGCHECK_TUPLE_LENGTH %q is not a valid number", faults.ErrConfiguration, value)
		}
		c.Compare.TupleLength = n
	}
	c.Compare.SynonymsPath = strings.TrimSpace(c.Compare.SynonymsPath)
	if c.Compare.SynonymsPath != "" {
		var err error
		if c.Compare.SynonymsPath, err = expandPath(c.Compare.SynonymsPath); err != nil {
			return fmt.Errorf("compare.synonyms_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := make(map[string]struct{}, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	c.Scan.Extensions = exts
}

func (c *Config) normalizeHistory() error {
	if value, ok := os.LookupEnv("PLAGCHECK_HISTORY_PATH"); ok && strings.TrimSpace(value) != "" {
		c.History.Path = value
	}
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("PLAGCHECK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
