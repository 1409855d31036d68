// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"net/http"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// Geocode handles GET /geocode?q=. Forward-geocodes a free-text place
// name into candidate coordinates.
func (h *Handlers) Geocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "query parameter q is required", nil)
		return
	}

	places, err := h.geocoder.Forward(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusBadGateway, models.CodeUpstreamError, "geocoding request failed", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"places": places})
}

// ReverseGeocode handles GET /geocode/reverse?lat=&lon=. Resolves
// coordinates to a city name and records them as the current location.
func (h *Handlers) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "lat and lon are required", nil)
		return
	}
	lat := getFloatParam(r, "lat", 0)
	lon := getFloatParam(r, "lon", 0)
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "lat and lon are out of range", nil)
		return
	}

	city, err := h.geocoder.Reverse(r.Context(), lat, lon)
	if err != nil {
		respondError(w, http.StatusBadGateway, models.CodeUpstreamError, "reverse geocoding request failed", err)
		return
	}

	coords := models.Coordinates{Latitude: lat, Longitude: lon}
	if err := h.store.SetCurrentCoords(r.Context(), coords); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save location", err)
		return
	}
	if err := h.store.SetCurrentCity(r.Context(), city); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save location", err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"city": city, "coordinates": coords})
}

// CurrentLocation handles GET /location.
func (h *Handlers) CurrentLocation(w http.ResponseWriter, r *http.Request) {
	city, cityFound, err := h.store.CurrentCity(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read location", err)
		return
	}
	coords, coordsFound, err := h.store.CurrentCoords(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read location", err)
		return
	}

	resp := map[string]interface{}{"known": cityFound || coordsFound}
	if cityFound {
		resp["city"] = city
	}
	if coordsFound {
		resp["coordinates"] = coords
	}
	respondData(w, http.StatusOK, resp)
}

// SavedLocations handles GET /locations.
func (h *Handlers) SavedLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.Locations(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read locations", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

// SetSavedLocations handles PUT /locations.
func (h *Handlers) SetSavedLocations(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Locations []models.StoredLocation `json:"locations"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "invalid request body", nil)
		return
	}
	if body.Locations == nil {
		body.Locations = []models.StoredLocation{}
	}

	if err := h.store.SetLocations(r.Context(), body.Locations); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save locations", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"locations": body.Locations})
}
