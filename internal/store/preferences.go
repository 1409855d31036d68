// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package store

import (
	"context"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// GetPreferences returns the stored user preferences. The second return
// is false when none are stored (or the stored value is malformed).
func (s *Store) GetPreferences(_ context.Context) (*models.UserPreferences, bool, error) {
	var prefs models.UserPreferences
	found, err := s.getJSON(keyPreferences, &prefs)
	if err != nil || !found {
		return nil, false, err
	}

	// Normalize shape so callers never see nil slices.
	if prefs.Categories == nil {
		prefs.Categories = []string{}
	}
	if prefs.Locations == nil {
		prefs.Locations = []string{}
	}

	return &prefs, true, nil
}

// SetPreferences stores the user preferences, replacing any existing
// value.
func (s *Store) SetPreferences(_ context.Context, prefs *models.UserPreferences) error {
	return s.setJSON(keyPreferences, prefs)
}

// ClearPreferences removes the stored preferences.
func (s *Store) ClearPreferences(_ context.Context) error {
	return s.remove(keyPreferences)
}

// Profile returns the stored user profile, if any.
func (s *Store) Profile(_ context.Context) (*models.UserProfile, bool, error) {
	var profile models.UserProfile
	found, err := s.getJSON(keyProfile, &profile)
	if err != nil || !found {
		return nil, false, err
	}
	return &profile, true, nil
}

// SetProfile stores the user profile.
func (s *Store) SetProfile(_ context.Context, profile *models.UserProfile) error {
	return s.setJSON(keyProfile, profile)
}

// LoggedIn returns the session flag; absent reads as false.
func (s *Store) LoggedIn(_ context.Context) (bool, error) {
	var flag bool
	found, err := s.getJSON(keyLoggedIn, &flag)
	if err != nil || !found {
		return false, err
	}
	return flag, nil
}

// SetLoggedIn stores the session flag.
func (s *Store) SetLoggedIn(_ context.Context, loggedIn bool) error {
	return s.setJSON(keyLoggedIn, loggedIn)
}
