// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package config defines the application configuration and its koanf-based
// loading pipeline: defaults, then an optional YAML file, then environment
// variables prefixed with EVENTDISC_.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Provider  ProviderConfig  `koanf:"provider"`
	Geocoding GeocodingConfig `koanf:"geocoding"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       int           `koanf:"rate_limit"`        // requests per window per IP
	RateLimitWindow time.Duration `koanf:"rate_limit_window"` //
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// ProviderConfig configures the external ticketing provider client.
type ProviderConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`

	// Breaker toggles the circuit breaker wrapper around the client.
	Breaker bool `koanf:"breaker"`
}

// GeocodingConfig configures the forward and reverse geocoding adapters.
type GeocodingConfig struct {
	ForwardURL string        `koanf:"forward_url"`
	ReverseURL string        `koanf:"reverse_url"`
	Timeout    time.Duration `koanf:"timeout"`
}

// StoreConfig configures the embedded key-value store.
type StoreConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	DefaultLimit int    `koanf:"default_limit"`
	MaxLimit     int    `koanf:"max_limit"`
	Radius       int    `koanf:"radius"`
	Unit         string `koanf:"unit"`
	PoolSize     int    `koanf:"pool_size"` // events fetched per tier
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Provider: ProviderConfig{
			BaseURL: "https://app.ticketmaster.com/discovery/v2",
			APIKey:  "",
			Timeout: 10 * time.Second,
			Breaker: true,
		},
		Geocoding: GeocodingConfig{
			ForwardURL: "https://nominatim.openstreetmap.org/search",
			ReverseURL: "https://api.bigdatacloud.net/data/reverse-geocode-client",
			Timeout:    5 * time.Second,
		},
		Store: StoreConfig{
			Path:       "/data/eventdisc",
			InMemory:   false,
			GCInterval: 10 * time.Minute,
		},
		Recommend: RecommendConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
			Radius:       50,
			Unit:         "miles",
			PoolSize:     50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks constraints that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}
	if c.Geocoding.Timeout <= 0 {
		return fmt.Errorf("geocoding.timeout must be positive")
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required unless store.in_memory is set")
	}
	if c.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be at least 1")
	}
	if c.Recommend.MaxLimit < c.Recommend.DefaultLimit {
		return fmt.Errorf("recommend.max_limit must be >= recommend.default_limit")
	}
	switch c.Recommend.Unit {
	case "miles", "km":
	default:
		return fmt.Errorf("recommend.unit must be miles or km, got %q", c.Recommend.Unit)
	}
	return nil
}
