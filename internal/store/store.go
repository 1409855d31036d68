// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package store persists the user's client-side state: saved event IDs,
// preferences, remembered locations, and the session flag.
//
// Values are JSON-serialized under fixed string keys with no schema
// versioning, so every read defensively validates shape: a value that
// fails to decode reads as absent, never as an error. Writes are
// read-modify-write with no cross-process coordination; the last writer
// wins.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/config"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
)

// Storage keys. These mirror the browser local-storage contract the
// service replaces.
const (
	keySavedEvents   = "events:saved"
	keyPreferences   = "user:preferences"
	keyLocations     = "user:locations"
	keyCurrentCity   = "location:current:city"
	keyCurrentCoords = "location:current:coords"
	keyLoggedIn      = "session:loggedin"
	keyProfile       = "user:profile"
)

// Store is the durable key-value store backing preferences and favorites.
// Safe for concurrent use within one process.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at the configured path.
func Open(cfg *config.StoreConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store, for tests.
func OpenInMemory() (*Store, error) {
	return Open(&config.StoreConfig{InMemory: true})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunGC runs one value-log garbage collection pass.
// badger.ErrNoRewrite (nothing to collect) is not an error.
func (s *Store) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return err
	}
	return nil
}

// getJSON reads and decodes the value at key. A missing key or a value
// that fails to decode both report found=false.
func (s *Store) getJSON(key string, out interface{}) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}

		return item.Value(func(val []byte) error {
			if jsonErr := json.Unmarshal(val, out); jsonErr != nil {
				// Malformed stored value: treat as absent.
				logging.Warn().Str("key", key).Err(jsonErr).Msg("discarding malformed stored value")
				return nil
			}
			found = true
			return nil
		})
	})
	return found, err
}

// setJSON encodes v and writes it at key.
func (s *Store) setJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// remove deletes the value at key. Deleting an absent key is a no-op.
func (s *Store) remove(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Clear removes every stored key, mirroring a full local-storage clear.
func (s *Store) Clear(_ context.Context) error {
	keys := []string{
		keySavedEvents, keyPreferences, keyLocations,
		keyCurrentCity, keyCurrentCoords, keyLoggedIn, keyProfile,
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		return nil
	})
}
