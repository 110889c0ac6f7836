package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Storage.Backend != BackendJSON {
			t.Errorf("expected storage backend json, got %s", config.Storage.Backend)
		}
		if config.Storage.Path != "./data/tasks.json" {
			t.Errorf("expected storage path ./data/tasks.json, got %s", config.Storage.Path)
		}
		if config.Server.Port != 5000 {
			t.Errorf("expected server port 5000, got %d", config.Server.Port)
		}
		if config.Server.APIPrefix != "/api/v1" {
			t.Errorf("expected api prefix /api/v1, got %s", config.Server.APIPrefix)
		}
		if len(config.Server.AllowedOrigins) != 4 {
			t.Errorf("expected 4 allowed origins, got %d", len(config.Server.AllowedOrigins))
		}
		if config.Server.Addr() != "127.0.0.1:5000" {
			t.Errorf("expected addr 127.0.0.1:5000, got %s", config.Server.Addr())
		}
		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Storage.Path != DefaultConfig().Storage.Path {
			t.Errorf("created config storage path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[storage]
backend = "sqlite"

[database]
path = "/custom/path.db"
max_open_conns = 4

[server]
host = "0.0.0.0"
port = 8080
allowed_origins = ["*"]
rate_limit = 0.0

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Storage.Backend != BackendSQLite {
			t.Errorf("expected backend sqlite, got %s", config.Storage.Backend)
		}
		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}
		if len(config.Server.AllowedOrigins) != 1 || config.Server.AllowedOrigins[0] != "*" {
			t.Errorf("expected allowed origins [*], got %v", config.Server.AllowedOrigins)
		}
		if config.Server.APIPrefix != "/api/v1" {
			t.Errorf("expected missing api_prefix to keep default, got %s", config.Server.APIPrefix)
		}
		if config.LogLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", config.LogLevel())
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tt := []struct {
			name   string
			mutate func(c *Config)
		}{
			{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }},
			{name: "empty json path", mutate: func(c *Config) { c.Storage.Path = "" }},
			{name: "empty sqlite path", mutate: func(c *Config) { c.Storage.Backend = BackendSQLite; c.Database.Path = "" }},
			{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
			{name: "prefix without slash", mutate: func(c *Config) { c.Server.APIPrefix = "api" }},
			{name: "negative rate", mutate: func(c *Config) { c.Server.RateLimit = -1 }},
			{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				config := DefaultConfig()
				tc.mutate(config)

				err := config.Validate()
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
