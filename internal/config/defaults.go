package config

const (
	defaultConfigPath  = "~/.config/plagcheck/config.toml"
	projectConfigName  = "plagcheck.toml"
	defaultTupleLength = 3
	defaultHistoryPath = "~/.local/share/plagcheck/history.db"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultExtension   = ".txt"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Compare: Compare{
			TupleLength: defaultTupleLength,
		},
		Scan: Scan{
			Extensions: []string{defaultExtension},
		},
		History: History{
			Path: defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
