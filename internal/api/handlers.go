// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package api provides the HTTP handlers and chi router for the Eventdisc
// JSON API.
package api

import (
	"net/http"
	"time"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/geo"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/recommend"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/store"
)

// Handlers bundles the dependencies of every endpoint.
type Handlers struct {
	source   provider.Source
	engine   *recommend.Engine
	store    *store.Store
	geocoder *geo.Client

	// now is injectable for deterministic filter tests.
	now func() time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(source provider.Source, engine *recommend.Engine, st *store.Store, geocoder *geo.Client) *Handlers {
	return &Handlers{
		source:   source,
		engine:   engine,
		store:    st,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}
