// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package store

import (
	"context"
)

// SavedEventIDs returns the saved (favorited) event ID list in insertion
// order. An absent or malformed value reads as an empty list.
func (s *Store) SavedEventIDs(_ context.Context) ([]string, error) {
	var ids []string
	found, err := s.getJSON(keySavedEvents, &ids)
	if err != nil {
		return nil, err
	}
	if !found || ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

// IsSaved reports whether the event ID is in the saved list.
func (s *Store) IsSaved(ctx context.Context, eventID string) (bool, error) {
	ids, err := s.SavedEventIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == eventID {
			return true, nil
		}
	}
	return false, nil
}

// ToggleSaved adds the event ID to the saved list if absent, removes it
// if present, and reports whether the event is saved afterwards.
//
// This is a non-atomic read-modify-write: concurrent togglers race and
// the last writer wins, matching the local-storage contract.
func (s *Store) ToggleSaved(ctx context.Context, eventID string) (bool, error) {
	ids, err := s.SavedEventIDs(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == eventID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}

	saved := !removed
	if saved {
		kept = append(kept, eventID)
	}

	if err := s.setJSON(keySavedEvents, kept); err != nil {
		return false, err
	}
	return saved, nil
}
