// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/config"
)

// NewRouter wires the full route tree with the global middleware stack.
func NewRouter(cfg *config.ServerConfig, h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(corsMiddleware(cfg))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))

		r.Get("/events", h.Events)
		r.Get("/events/{id}", h.EventByID)
		r.Get("/categories", h.Categories)

		r.Get("/recommendations", h.Recommendations)

		r.Get("/preferences", h.Preferences)
		r.Put("/preferences", h.SetPreferences)
		r.Delete("/preferences", h.ClearPreferences)

		r.Get("/favorites", h.Favorites)
		r.Post("/favorites/{id}/toggle", h.ToggleFavorite)

		r.Get("/profile", h.Profile)
		r.Put("/profile", h.SetProfile)

		r.Get("/geocode", h.Geocode)
		r.Get("/geocode/reverse", h.ReverseGeocode)
		r.Get("/location", h.CurrentLocation)
		r.Get("/locations", h.SavedLocations)
		r.Put("/locations", h.SetSavedLocations)
	})

	return r
}

func corsMiddleware(cfg *config.ServerConfig) func(http.Handler) http.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func rateLimit(cfg *config.ServerConfig) func(http.Handler) http.Handler {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 100
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
	)
}
