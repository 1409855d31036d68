// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package recommend

import (
	"context"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// Strategy names the tier (or mode) that produced a recommendation set.
type Strategy string

const (
	// StrategyFull combined the user's category and location preferences.
	StrategyFull Strategy = "full"

	// StrategyLocation used location preferences only.
	StrategyLocation Strategy = "location"

	// StrategyCategory used category preferences only.
	StrategyCategory Strategy = "category"

	// StrategyPopular is the unfiltered soonest-first fallback.
	StrategyPopular Strategy = "popular"

	// StrategyClient scored an already-fetched pool without network access.
	StrategyClient Strategy = "client"
)

// Request parameterizes one recommendation run.
type Request struct {
	// Limit caps the returned events. Zero means the configured default.
	Limit int

	// IncludeSaved keeps events the user has already favorited.
	IncludeSaved bool

	// Pool, when non-nil, switches the engine to client-side scoring over
	// these events instead of the tiered provider queries.
	Pool []models.Event
}

// Response is a ranked, deduplicated recommendation set and the strategy
// that produced it.
type Response struct {
	Events   []models.Event `json:"events"`
	Strategy Strategy       `json:"strategy"`
}

// PreferenceStore is the persisted-preferences capability the engine
// depends on. Implemented by the store package; injected so the engine is
// testable without a real store.
type PreferenceStore interface {
	GetPreferences(ctx context.Context) (*models.UserPreferences, bool, error)
	CurrentCoords(ctx context.Context) (models.Coordinates, bool, error)
}

// FavoritesStore is the saved-events capability the engine depends on.
type FavoritesStore interface {
	SavedEventIDs(ctx context.Context) ([]string, error)
}
