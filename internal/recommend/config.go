// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package recommend

import "fmt"

// Config holds the engine's tuning knobs.
type Config struct {
	// DefaultLimit is used when a request does not set a limit.
	DefaultLimit int

	// MaxLimit caps any requested limit.
	MaxLimit int

	// Radius (in Unit) bounds location-based provider queries when
	// coordinates are known.
	Radius int

	// Unit is "miles" or "km".
	Unit string

	// PoolSize is how many events each tier requests from the provider.
	PoolSize int
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: 10,
		MaxLimit:     50,
		Radius:       50,
		Unit:         "miles",
		PoolSize:     50,
	}
}

// Validate checks config constraints.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1")
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit %d below default limit %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.Radius < 1 {
		return fmt.Errorf("radius must be at least 1")
	}
	if c.Unit != "miles" && c.Unit != "km" {
		return fmt.Errorf("unit must be miles or km, got %q", c.Unit)
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("pool size must be at least 1")
	}
	return nil
}
