// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package store

import (
	"context"
	"time"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
)

// GCService periodically runs badger value-log garbage collection.
// It implements suture.Service and runs under the supervisor tree.
type GCService struct {
	store    *Store
	interval time.Duration
}

// NewGCService creates a GC service for the store.
func NewGCService(s *Store, interval time.Duration) *GCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &GCService{store: s, interval: interval}
}

// Serve runs GC passes until the context is cancelled.
func (g *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.store.RunGC(); err != nil {
				logging.Warn().Err(err).Msg("store GC pass failed")
			}
		}
	}
}

// String names the service in supervisor logs.
func (g *GCService) String() string {
	return "store-gc"
}
