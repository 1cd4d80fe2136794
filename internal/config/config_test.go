package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/config"
	"plagcheck/internal/faults"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "plagcheck", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	if cfg.Compare.TupleLength != 3 {
		t.Fatalf("unexpected default tuple length: %d", cfg.Compare.TupleLength)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "plagcheck", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{".txt"}) {
		t.Fatalf("unexpected scan extensions: %v", cfg.Scan.Extensions)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "plagcheck.toml")

	type payload struct {
		Compare struct {
			TupleLength  int    `toml:"tuple_length"`
			SynonymsPath string `toml:"synonyms_path"`
		} `toml:"compare"`
		Scan struct {
			Extensions []string `toml:"extensions"`
		} `toml:"scan"`
		History struct {
			Enabled bool   `toml:"enabled"`
			Path    string `toml:"path"`
		} `toml:"history"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Compare.TupleLength = 4
	custom.Compare.SynonymsPath = filepath.Join(tempDir, "syns.txt")
	custom.Scan.Extensions = []string{"TXT", ".md", "txt", " "}
	custom.History.Enabled = true
	custom.History.Path = filepath.Join(tempDir, "data", "history.db")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Compare.TupleLength != 4 {
		t.Fatalf("expected tuple length 4, got %d", cfg.Compare.TupleLength)
	}
	if cfg.Compare.SynonymsPath != custom.Compare.SynonymsPath {
		t.Fatalf("unexpected synonyms path %q", cfg.Compare.SynonymsPath)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{".txt", ".md"}) {
		t.Fatalf("unexpected normalized extensions: %v", cfg.Scan.Extensions)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(tempDir, "data"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected history directory to exist: %v", err)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "plagcheck.toml")
	content := "[compare]\ntuple_length = 5\n[logging]\nlevel = \"error\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	historyPath := filepath.Join(tempDir, "env.db")
	t.Setenv("PLAGCHECK_TUPLE_LENGTH", "2")
	t.Setenv("PLAGCHECK_HISTORY_PATH", historyPath)
	t.Setenv("PLAGCHECK_LOG_LEVEL", "INFO")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Compare.TupleLength != 2 {
		t.Errorf("expected tuple length from env, got %d", cfg.Compare.TupleLength)
	}
	if cfg.History.Path != historyPath {
		t.Errorf("expected history path from env, got %q", cfg.History.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "zero tuple length", content: "[compare]\ntuple_length = 0\n"},
		{name: "negative tuple length", content: "[compare]\ntuple_length = -2\n"},
		{name: "unknown key", content: "[compare]\ntuple_len = 3\n"},
		{name: "malformed toml", content: "[compare\n"},
		{name: "bad level", content: "[logging]\nlevel = \"loud\"\n"},
		{name: "negative min percent", content: "[scan]\nmin_percent = -1\n"},
		{name: "non numeric env", content: "", env: map[string]string{"PLAGCHECK_TUPLE_LENGTH": "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			configPath := filepath.Join(t.TempDir(), "plagcheck.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, faults.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Compare.TupleLength != config.Default().Compare.TupleLength {
		t.Fatalf("expected default tuple length, got %d", cfg.Compare.TupleLength)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "tuple_length") {
		t.Fatalf("sample config missing tuple_length: %s", contents)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	defaults := config.Default()
	if cfg.Compare.TupleLength != defaults.Compare.TupleLength || cfg.History.Enabled != defaults.History.Enabled {
		t.Fatalf("sample diverges from defaults: %+v", cfg)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg = config.Default()
	cfg.Compare.TupleLength = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for tuple length 0")
	}

	cfg = config.Default()
	cfg.History.Enabled = true
	cfg.History.Path = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when history enabled without path")
	}
}

// chdir mirrors testing.T.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Open(".")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		dir, err = os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		err := oldwd.Chdir()
		oldwd.Close()
		if err != nil {
			panic("chdir: " + err.Error())
		}
	})
}
