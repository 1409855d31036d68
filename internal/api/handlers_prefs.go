// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// Preferences handles GET /preferences. Absent preferences read as empty,
// never as an error.
func (h *Handlers) Preferences(w http.ResponseWriter, r *http.Request) {
	prefs, found, err := h.store.GetPreferences(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read preferences", err)
		return
	}
	if !found {
		prefs = &models.UserPreferences{Categories: []string{}, Locations: []string{}}
	}
	respondData(w, http.StatusOK, prefs)
}

// SetPreferences handles PUT /preferences with last-writer-wins semantics.
func (h *Handlers) SetPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := decodeBody(r, &prefs); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "invalid request body", nil)
		return
	}
	if prefs.Categories == nil {
		prefs.Categories = []string{}
	}
	if prefs.Locations == nil {
		prefs.Locations = []string{}
	}

	if err := h.store.SetPreferences(r.Context(), &prefs); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save preferences", err)
		return
	}
	respondData(w, http.StatusOK, &prefs)
}

// ClearPreferences handles DELETE /preferences.
func (h *Handlers) ClearPreferences(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearPreferences(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to clear preferences", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"cleared": true})
}

// Favorites handles GET /favorites.
func (h *Handlers) Favorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.store.SavedEventIDs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read favorites", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"eventIds": ids})
}

// ToggleFavorite handles POST /favorites/{id}/toggle and returns the state
// after the flip.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "event id is required", nil)
		return
	}

	saved, err := h.store.ToggleSaved(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to update favorites", err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{"eventId": id, "saved": saved})
}

// Profile handles GET /profile.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	profile, found, err := h.store.Profile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read profile", err)
		return
	}
	loggedIn, err := h.store.LoggedIn(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to read session", err)
		return
	}
	if !found {
		profile = &models.UserProfile{}
	}
	respondData(w, http.StatusOK, map[string]interface{}{"profile": profile, "loggedIn": loggedIn})
}

// SetProfile handles PUT /profile and marks the session logged in.
func (h *Handlers) SetProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := decodeBody(r, &profile); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidationError, "invalid request body", nil)
		return
	}

	if err := h.store.SetProfile(r.Context(), &profile); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save profile", err)
		return
	}
	if err := h.store.SetLoggedIn(r.Context(), true); err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "failed to save session", err)
		return
	}
	respondData(w, http.StatusOK, &profile)
}
