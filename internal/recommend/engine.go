// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package recommend produces ranked event recommendations from the user's
// stored preferences.
//
// With provider access, an ordered tier sequence is attempted: combined
// category+location, location only, category only, then an unfiltered
// soonest-first fallback. A tier that errors counts as zero results and
// the next tier runs; only failure of the final fallback propagates.
//
// Without provider access (a pool of already-fetched events), an
// equivalent weighted scoring function ranks the pool instead.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/metrics"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/normalize"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
)

// minLocationResults is the acceptance floor for the location-only tier
// (bounded above by the requested limit).
const minLocationResults = 5

// Engine computes recommendations. Safe for concurrent use; all state is
// read-only after construction.
type Engine struct {
	config *Config
	source provider.Source
	prefs  PreferenceStore
	favs   FavoritesStore
	logger zerolog.Logger

	// now is injectable for deterministic tests.
	now func() time.Time
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source provider.Source, prefs PreferenceStore, favs FavoritesStore, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		source: source,
		prefs:  prefs,
		favs:   favs,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
	}, nil
}

// SetNow overrides the engine clock, for tests.
func (e *Engine) SetNow(now func() time.Time) {
	e.now = now
}

// Recommend produces a ranked, deduplicated recommendation set.
// When req.Pool is set the pool is scored client-side; otherwise the
// tiered provider strategies run.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	req.Limit = e.clampLimit(req.Limit)

	prefs := e.loadPreferences(ctx)
	exclude := e.loadSavedSet(ctx, req.IncludeSaved)

	var (
		resp *Response
		err  error
	)
	if req.Pool != nil {
		resp = e.recommendFromPool(req, prefs, exclude)
	} else {
		resp, err = e.recommendTiered(ctx, req, prefs, exclude)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecommendationStrategies.WithLabelValues(string(resp.Strategy)).Inc()
	e.logger.Debug().
		Str("strategy", string(resp.Strategy)).
		Int("events", len(resp.Events)).
		Msg("recommendation complete")

	return resp, nil
}

// clampLimit applies the default and maximum limits.
func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		return e.config.MaxLimit
	}
	return limit
}

// loadPreferences reads stored preferences; any failure reads as absent.
func (e *Engine) loadPreferences(ctx context.Context) *models.UserPreferences {
	if e.prefs == nil {
		return nil
	}
	prefs, found, err := e.prefs.GetPreferences(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("reading preferences failed, recommending without them")
		return nil
	}
	if !found {
		return nil
	}
	return prefs
}

// loadSavedSet builds the excluded-event set from the favorites store.
func (e *Engine) loadSavedSet(ctx context.Context, includeSaved bool) map[string]struct{} {
	if includeSaved || e.favs == nil {
		return nil
	}
	ids, err := e.favs.SavedEventIDs(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("reading saved events failed, not excluding history")
		return nil
	}

	exclude := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		exclude[id] = struct{}{}
	}
	return exclude
}

// recommendTiered runs the ordered provider-backed strategies.
func (e *Engine) recommendTiered(ctx context.Context, req Request, prefs *models.UserPreferences, exclude map[string]struct{}) (*Response, error) {
	hasCategories := prefs != nil && len(prefs.Categories) > 0
	hasLocations := prefs != nil && len(prefs.Locations) > 0

	if hasCategories && hasLocations {
		if events := e.tryTier(ctx, StrategyFull, e.tierParams(ctx, prefs, true, true), req, exclude); len(events) >= 1 {
			return &Response{Events: events, Strategy: StrategyFull}, nil
		}
	}

	if hasLocations {
		events := e.tryTier(ctx, StrategyLocation, e.tierParams(ctx, prefs, false, true), req, exclude)
		if len(events) >= minAccept(req.Limit) {
			return &Response{Events: events, Strategy: StrategyLocation}, nil
		}
	}

	if hasCategories {
		if events := e.tryTier(ctx, StrategyCategory, e.tierParams(ctx, prefs, true, false), req, exclude); len(events) >= 1 {
			return &Response{Events: events, Strategy: StrategyCategory}, nil
		}
	}

	return e.popularFallback(ctx, req, exclude)
}

// minAccept is the location tier's acceptance threshold.
func minAccept(limit int) int {
	if limit < minLocationResults {
		return limit
	}
	return minLocationResults
}

// tierParams builds the provider query for one tier.
func (e *Engine) tierParams(ctx context.Context, prefs *models.UserPreferences, withCategory, withLocation bool) provider.SearchParams {
	params := provider.SearchParams{
		StartDateTime: e.now().UTC().Format("2006-01-02T15:04:05Z"),
		IncludeTBA:    "no",
		IncludeTBD:    "no",
		Size:          e.config.PoolSize,
		Sort:          "date,asc",
	}

	if withCategory {
		params.ClassificationID = strings.Join(prefs.Categories, ",")
	}

	if withLocation {
		if coords, ok := e.currentCoords(ctx); ok {
			params.GeoPoint = fmt.Sprintf("%.4f,%.4f", coords.Latitude, coords.Longitude)
			params.Radius = e.config.Radius
			params.Unit = e.config.Unit
		} else {
			params.City = prefs.PrimaryLocation()
		}
	}

	return params
}

// currentCoords reads the stored current-location coordinates.
func (e *Engine) currentCoords(ctx context.Context) (models.Coordinates, bool) {
	if e.prefs == nil {
		return models.Coordinates{}, false
	}
	coords, found, err := e.prefs.CurrentCoords(ctx)
	if err != nil || !found {
		return models.Coordinates{}, false
	}
	if coords.Latitude == 0 && coords.Longitude == 0 {
		return models.Coordinates{}, false
	}
	return coords, true
}

// tryTier fetches one tier. Any error reads as zero results so the next
// tier can run.
func (e *Engine) tryTier(ctx context.Context, strategy Strategy, params provider.SearchParams, req Request, exclude map[string]struct{}) []models.Event {
	page, err := e.source.FetchEvents(ctx, params)
	if err != nil {
		e.logger.Warn().
			Str("tier", string(strategy)).
			Str("kind", provider.KindOf(err).String()).
			Err(err).
			Msg("tier fetch failed, trying next tier")
		return nil
	}

	events := normalize.MapEvents(page.Events)
	return e.prepare(events, exclude, req.Limit)
}

// popularFallback is the final unfiltered tier: soonest first. It always
// succeeds unless the provider call itself fails, which is the only tier
// error that propagates.
func (e *Engine) popularFallback(ctx context.Context, req Request, exclude map[string]struct{}) (*Response, error) {
	params := provider.SearchParams{
		StartDateTime: e.now().UTC().Format("2006-01-02T15:04:05Z"),
		Size:          e.config.PoolSize,
		Sort:          "date,asc",
	}

	page, err := e.source.FetchEvents(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("popular fallback: %w", err)
	}

	events := normalize.MapEvents(page.Events)
	sortByStartDate(events)
	events = e.prepare(events, exclude, req.Limit)

	return &Response{Events: events, Strategy: StrategyPopular}, nil
}

// prepare applies the shared post-processing of every tier: drop offsale
// events, drop events the user has saved, dedupe by ID, truncate.
func (e *Engine) prepare(events []models.Event, exclude map[string]struct{}, limit int) []models.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]models.Event, 0, limit)

	for i := range events {
		ev := &events[i]
		if strings.EqualFold(ev.Status, models.StatusOffSale) {
			continue
		}
		if _, excluded := exclude[ev.ID]; excluded {
			continue
		}
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}

		out = append(out, *ev)
		if len(out) == limit {
			break
		}
	}
	return out
}

// recommendFromPool scores an already-fetched pool without any network
// access.
func (e *Engine) recommendFromPool(req Request, prefs *models.UserPreferences, exclude map[string]struct{}) *Response {
	candidates := e.eligible(req.Pool, exclude)

	if prefs.IsEmpty() {
		sortByStartDate(candidates)
		if len(candidates) > req.Limit {
			candidates = candidates[:req.Limit]
		}
		return &Response{Events: candidates, Strategy: StrategyClient}
	}

	matching := make([]models.Event, 0, len(candidates))
	other := make([]models.Event, 0, len(candidates))
	for i := range candidates {
		if MatchesPreferences(&candidates[i], prefs) {
			matching = append(matching, candidates[i])
		} else {
			other = append(other, candidates[i])
		}
	}

	sortByScore(matching, prefs)
	sortByScore(other, prefs)

	out := matching
	if len(out) > req.Limit {
		out = out[:req.Limit]
	} else if len(out) < req.Limit {
		// Top up from the rest, best scores first.
		need := req.Limit - len(out)
		if need > len(other) {
			need = len(other)
		}
		out = append(out, other[:need]...)
	}

	return &Response{Events: out, Strategy: StrategyClient}
}

// eligible keeps future-dated, non-excluded, deduplicated events.
func (e *Engine) eligible(pool []models.Event, exclude map[string]struct{}) []models.Event {
	now := e.now()
	seen := make(map[string]struct{}, len(pool))
	out := make([]models.Event, 0, len(pool))

	for i := range pool {
		ev := &pool[i]
		if _, excluded := exclude[ev.ID]; excluded {
			continue
		}
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		start, ok := startInstant(ev, now.Location())
		if !ok || !start.After(now) {
			continue
		}
		seen[ev.ID] = struct{}{}
		out = append(out, *ev)
	}
	return out
}

// startInstant resolves an event's start time from its date and optional
// time strings.
func startInstant(event *models.Event, loc *time.Location) (time.Time, bool) {
	if event.StartDate == "" {
		return time.Time{}, false
	}
	if event.StartTime != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", event.StartDate+" "+event.StartTime, loc); err == nil {
			return t, true
		}
	}
	t, err := time.ParseInLocation("2006-01-02", event.StartDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortByScore sorts descending by preference score with event ID as the
// deterministic secondary key.
func sortByScore(events []models.Event, prefs *models.UserPreferences) {
	sort.SliceStable(events, func(i, j int) bool {
		si, sj := Score(&events[i], prefs), Score(&events[j], prefs)
		if si != sj {
			return si > sj
		}
		return events[i].ID < events[j].ID
	})
}

// sortByStartDate sorts ascending by start date (soonest first), event ID
// as the secondary key.
func sortByStartDate(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].StartDate != events[j].StartDate {
			// Empty dates sort last.
			if events[i].StartDate == "" {
				return false
			}
			if events[j].StartDate == "" {
				return true
			}
			return events[i].StartDate < events[j].StartDate
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].ID < events[j].ID
	})
}
