// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/filter"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/normalize"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
)

// eventsRequest is the validated query surface of GET /events.
type eventsRequest struct {
	StartDateTime string `validate:"omitempty,providerdatetime"`
	EndDateTime   string `validate:"omitempty,providerdatetime"`
	Date          string `validate:"omitempty,datebucket"`
	Price         string `validate:"omitempty,pricebucket"`
	Size          int    `validate:"min=0,max=200"`
	Page          int    `validate:"min=0"`
}

// eventsResponse is the payload of GET /events.
type eventsResponse struct {
	Events []models.Event    `json:"events"`
	Page   provider.PageInfo `json:"page"`
}

// Events handles GET /events: provider search, normalization, then
// client-side filtering.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := eventsRequest{
		StartDateTime: q.Get("startDateTime"),
		EndDateTime:   q.Get("endDateTime"),
		Date:          q.Get("date"),
		Price:         q.Get("price"),
		Size:          getIntParam(r, "size", 0),
		Page:          getIntParam(r, "page", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	params := provider.SearchParams{
		Keyword:            q.Get("keyword"),
		ClassificationName: q.Get("classificationName"),
		ClassificationID:   q.Get("classificationId"),
		StartDateTime:      req.StartDateTime,
		EndDateTime:        req.EndDateTime,
		City:               q.Get("city"),
		StateCode:          q.Get("stateCode"),
		CountryCode:        q.Get("countryCode"),
		PostalCode:         q.Get("postalCode"),
		Radius:             getIntParam(r, "radius", 0),
		Unit:               q.Get("unit"),
		GeoPoint:           q.Get("geoPoint"),
		LatLong:            q.Get("latlong"),
		VenueID:            q.Get("venueId"),
		AttractionID:       q.Get("attractionId"),
		GenreID:            q.Get("genreId"),
		SegmentID:          q.Get("segmentId"),
		IncludeTBA:         q.Get("includeTBA"),
		IncludeTBD:         q.Get("includeTBD"),
		IncludeFamily:      q.Get("includeFamily"),
		Locale:             q.Get("locale"),
		Size:               req.Size,
		Page:               req.Page,
		Sort:               q.Get("sort"),
	}

	page, err := h.source.FetchEvents(r.Context(), params)
	if err != nil {
		respondProviderError(w, err)
		return
	}

	events := normalize.MapEvents(page.Events)

	spec := models.FilterSpec{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Date:     req.Date,
		Location: q.Get("location"),
		Price:    req.Price,
	}
	events = filter.Events(events, spec, h.now())

	respondData(w, http.StatusOK, &eventsResponse{Events: events, Page: page.Page})
}

// EventByID handles GET /events/{id}.
func (h *Handlers) EventByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "event id is required", nil)
		return
	}

	raw, err := h.source.FetchEventByID(r.Context(), id)
	if err != nil {
		if pe, ok := err.(*provider.Error); ok && pe.Status == http.StatusNotFound {
			respondError(w, http.StatusNotFound, models.CodeNotFound, "event not found", nil)
			return
		}
		respondProviderError(w, err)
		return
	}

	event := normalize.MapEvent(raw)
	respondData(w, http.StatusOK, &event)
}

// Categories handles GET /categories.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	segments, err := h.source.FetchCategories(r.Context())
	if err != nil {
		respondProviderError(w, err)
		return
	}

	// Attach display names so the UI never resolves IDs itself.
	type category struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	}
	categories := make([]category, len(segments))
	for i, seg := range segments {
		name := seg.Name
		if name == "" {
			name = normalize.CategoryDisplayName(seg.ID)
		}
		categories[i] = category{
			ID:          seg.ID,
			Name:        name,
			DisplayName: normalize.CategoryDisplayName(seg.ID),
		}
	}

	respondData(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
