// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package recommend

import (
	"strings"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/normalize"
)

// Scoring weights for client-side ranking.
const (
	weightCategory = 10
	weightLocation = 3
	weightPrice    = 2
	weightOnSale   = 1
)

// umbrellaSegmentIDs are the top-level segments treated as self-matching:
// an event whose category is one of these matches a user who selected
// that segment regardless of genre-level granularity.
var umbrellaSegmentIDs = []string{
	normalize.SegmentMusicID,
	normalize.SegmentSportsID,
	normalize.SegmentArtsTheatreID,
}

// Score computes the weighted preference score of one event.
// Category match dominates (10), then location (3), price fit (2), and a
// small on-sale bonus (1).
func Score(event *models.Event, prefs *models.UserPreferences) int {
	if prefs == nil {
		return 0
	}

	score := 0

	if MatchesPreferences(event, prefs) {
		score += weightCategory
	}

	if locationMatches(event, prefs) {
		score += weightLocation
	}

	if cheapest, ok := event.CheapestPrice(); !ok || cheapest <= prefs.MaxPrice {
		score += weightPrice
	}

	if strings.EqualFold(event.Status, models.StatusOnSale) {
		score += weightOnSale
	}

	return score
}

// MatchesPreferences reports whether an event belongs to the user's
// preferred categories. Umbrella segments self-match: selecting the music
// segment matches every music event even when its genre ID differs from
// anything the user picked.
func MatchesPreferences(event *models.Event, prefs *models.UserPreferences) bool {
	if prefs == nil || len(prefs.Categories) == 0 {
		return false
	}

	for _, umbrella := range umbrellaSegmentIDs {
		if event.Category.ID == umbrella && containsID(prefs.Categories, umbrella) {
			return true
		}
	}

	return containsID(prefs.Categories, event.Category.ID) ||
		containsID(prefs.Categories, event.Genre.ID) ||
		containsID(prefs.Categories, event.SubGenre.ID)
}

// locationMatches reports whether any preferred location string appears
// in the venue city or address.
func locationMatches(event *models.Event, prefs *models.UserPreferences) bool {
	city := strings.ToLower(event.Venue.City)
	address := strings.ToLower(event.Venue.Address)

	for _, loc := range prefs.Locations {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc == "" {
			continue
		}
		if strings.Contains(city, loc) || strings.Contains(address, loc) {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
