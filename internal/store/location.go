// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package store

import (
	"context"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// Locations returns the remembered location list with coordinates.
func (s *Store) Locations(_ context.Context) ([]models.StoredLocation, error) {
	var locations []models.StoredLocation
	found, err := s.getJSON(keyLocations, &locations)
	if err != nil {
		return nil, err
	}
	if !found || locations == nil {
		return []models.StoredLocation{}, nil
	}
	return locations, nil
}

// SetLocations replaces the remembered location list.
func (s *Store) SetLocations(_ context.Context, locations []models.StoredLocation) error {
	return s.setJSON(keyLocations, locations)
}

// CurrentCity returns the last resolved "current location" city name.
func (s *Store) CurrentCity(_ context.Context) (string, bool, error) {
	var city string
	found, err := s.getJSON(keyCurrentCity, &city)
	if err != nil || !found || city == "" {
		return "", false, err
	}
	return city, true, nil
}

// SetCurrentCity stores the current city name.
func (s *Store) SetCurrentCity(_ context.Context, city string) error {
	return s.setJSON(keyCurrentCity, city)
}

// CurrentCoords returns the last resolved "current location" coordinates.
func (s *Store) CurrentCoords(_ context.Context) (models.Coordinates, bool, error) {
	var coords models.Coordinates
	found, err := s.getJSON(keyCurrentCoords, &coords)
	if err != nil || !found {
		return models.Coordinates{}, false, err
	}
	return coords, true, nil
}

// SetCurrentCoords stores the current coordinates.
func (s *Store) SetCurrentCoords(_ context.Context, coords models.Coordinates) error {
	return s.setJSON(keyCurrentCoords, coords)
}
