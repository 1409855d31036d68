// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"net/http"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/normalize"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/recommend"
)

// Recommendations handles GET /recommendations.
//
// By default the tiered provider strategies run. mode=client fetches one
// upcoming-events pool and scores it locally, matching a UI that already
// holds a page of events.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	req := recommend.Request{
		Limit:        getIntParam(r, "limit", 0),
		IncludeSaved: getBoolParam(r, "includeSaved", false),
	}

	if r.URL.Query().Get("mode") == "client" {
		pool, err := h.fetchPool(r)
		if err != nil {
			respondProviderError(w, err)
			return
		}
		req.Pool = pool
	}

	resp, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		respondProviderError(w, err)
		return
	}

	respondData(w, http.StatusOK, resp)
}

func (h *Handlers) fetchPool(r *http.Request) ([]models.Event, error) {
	params := provider.SearchParams{
		StartDateTime: h.now().UTC().Format("2006-01-02T15:04:05Z"),
		Size:          getIntParam(r, "poolSize", 50),
		Sort:          "date,asc",
	}
	page, err := h.source.FetchEvents(r.Context(), params)
	if err != nil {
		return nil, err
	}
	return normalize.MapEvents(page.Events), nil
}
