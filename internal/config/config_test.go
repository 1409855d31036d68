// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Provider.Timeout != 10*time.Second {
		t.Errorf("Provider.Timeout = %v, want 10s", cfg.Provider.Timeout)
	}
	if !cfg.Provider.Breaker {
		t.Error("Provider.Breaker should default to true")
	}
	if cfg.Recommend.DefaultLimit != 10 || cfg.Recommend.MaxLimit != 50 {
		t.Errorf("Recommend limits = %d/%d, want 10/50", cfg.Recommend.DefaultLimit, cfg.Recommend.MaxLimit)
	}
	if cfg.Recommend.Unit != "miles" {
		t.Errorf("Recommend.Unit = %q, want miles", cfg.Recommend.Unit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EVENTDISC_SERVER_PORT", "9090")
	t.Setenv("EVENTDISC_PROVIDER_API_KEY", "secret-key")
	t.Setenv("EVENTDISC_LOGGING_LEVEL", "debug")
	t.Setenv("EVENTDISC_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Provider.APIKey != "secret-key" {
		t.Errorf("Provider.APIKey = %q", cfg.Provider.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != "https://a.example" {
		t.Errorf("CORSOrigins = %v, want two trimmed entries", cfg.Server.CORSOrigins)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 7070\nprovider:\n  api_key: from-file\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from file", cfg.Server.Port)
	}
	if cfg.Provider.APIKey != "from-file" {
		t.Errorf("Provider.APIKey = %q, want from-file", cfg.Provider.APIKey)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("EVENTDISC_SERVER_PORT", "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %d, want env override 6060", cfg.Server.Port)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EVENTDISC_SERVER_PORT", "server.port"},
		{"EVENTDISC_PROVIDER_API_KEY", "provider.api_key"},
		{"EVENTDISC_SERVER_RATE_LIMIT_WINDOW", "server.rate_limit_window"},
		{"EVENTDISC_LOGGING_LEVEL", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envTransform(tt.in); got != tt.want {
				t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing base url", func(c *Config) { c.Provider.BaseURL = "" }, true},
		{"zero provider timeout", func(c *Config) { c.Provider.Timeout = 0 }, true},
		{"missing store path", func(c *Config) { c.Store.Path = "" }, true},
		{"in-memory store without path", func(c *Config) {
			c.Store.Path = ""
			c.Store.InMemory = true
		}, false},
		{"max below default limit", func(c *Config) { c.Recommend.MaxLimit = 5 }, true},
		{"bad unit", func(c *Config) { c.Recommend.Unit = "furlongs" }, true},
		{"km unit", func(c *Config) { c.Recommend.Unit = "km" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
