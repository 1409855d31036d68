// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package provider implements the typed client for the external ticketing
// provider's discovery API.
//
// The client translates application-level search parameters into the
// provider's query contract, validates date parameters before any network
// I/O, and normalizes upstream failures into a typed error taxonomy
// (ErrorKind) so callers never have to sniff message strings.
//
// An empty result set (missing _embedded in the response) is not an error:
// FetchEvents returns an empty page with zeroed pagination.
//
// BreakerClient wraps Client with a circuit breaker; both satisfy Source.
package provider
