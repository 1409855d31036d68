// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package main is the entry point for the Eventdisc server.
//
// Eventdisc aggregates live events from an external ticketing provider,
// normalizes them into a single shape, and serves discovery, filtering,
// and personalized recommendations over a JSON API. User preferences,
// saved events, and remembered locations persist in an embedded BadgerDB
// store.
//
// The server initializes components in order:
//
//  1. Configuration: layered Koanf v2 sources (defaults, config.yaml,
//     EVENTDISC_* environment variables)
//  2. Store: BadgerDB with a supervised garbage-collection loop
//  3. Provider: ticketing API client, optionally wrapped in a circuit
//     breaker
//  4. Recommendation engine: tiered provider queries with client-side
//     scoring fallback
//  5. HTTP server: chi router under supervisor-tree management
//
// Shutdown on SIGINT/SIGTERM is graceful: the HTTP server drains
// in-flight requests and the store closes cleanly.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/api"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/config"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/geo"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/recommend"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/store"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors are logged with the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("provider_url", cfg.Provider.BaseURL).
		Str("store_path", cfg.Store.Path).
		Bool("breaker", cfg.Provider.Breaker).
		Msg("Configuration loaded")

	st, err := store.Open(&cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	var source provider.Source = provider.NewClient(&cfg.Provider)
	if cfg.Provider.Breaker {
		source = provider.NewBreakerClient(source)
		logging.Info().Msg("Provider circuit breaker enabled")
	}

	geocoder := geo.NewClient(&cfg.Geocoding)

	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultLimit: cfg.Recommend.DefaultLimit,
		MaxLimit:     cfg.Recommend.MaxLimit,
		Radius:       cfg.Recommend.Radius,
		Unit:         cfg.Recommend.Unit,
		PoolSize:     cfg.Recommend.PoolSize,
	}, source, st, st, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handlers := api.NewHandlers(source, engine, st, geocoder)
	router := api.NewRouter(&cfg.Server, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for suture event logging.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	tree.AddStorageService(store.NewGCService(st, cfg.Store.GCInterval))
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("Serving HTTP API")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor exited with error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Error during shutdown")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
	}

	logging.Info().Msg("Stopped")
}
