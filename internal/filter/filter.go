// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package filter applies client-side filter specifications to normalized
// events. All matching is pure and order-preserving: the returned subset
// keeps the input order, and nothing is re-sorted.
//
// Category matching here is by category NAME, unlike the recommendation
// engine which matches by segment ID. The two paths serve different
// contexts (a UI category dropdown vs stored preference IDs) and are
// intentionally kept distinct.
package filter

import (
	"strings"
	"time"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// Events returns the subset of events matching every set field of spec.
// Date buckets are computed against now; pass time.Now() in production
// and a fixed instant in tests.
func Events(events []models.Event, spec models.FilterSpec, now time.Time) []models.Event {
	matched := make([]models.Event, 0, len(events))
	for i := range events {
		if Matches(&events[i], spec, now) {
			matched = append(matched, events[i])
		}
	}
	return matched
}

// Matches reports whether a single event satisfies spec.
func Matches(event *models.Event, spec models.FilterSpec, now time.Time) bool {
	return matchesSearch(event, spec.Search) &&
		matchesCategory(event, spec.Category) &&
		matchesDate(event, spec.Date, now) &&
		matchesLocation(event, spec.Location) &&
		matchesPrice(event, spec.Price)
}

// matchesSearch is a case-insensitive substring match across name,
// description, venue name and address, and all three taxonomy names.
// Any single field containing the term is a match.
func matchesSearch(event *models.Event, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	fields := []string{
		event.Name,
		event.Description,
		event.Venue.Name,
		event.Venue.Address,
		event.Category.Name,
		event.Genre.Name,
		event.SubGenre.Name,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesCategory is an exact, case-insensitive match on the category
// display name.
func matchesCategory(event *models.Event, category string) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(event.Category.Name, category)
}

// matchesDate checks the event's start against the requested bucket.
// All buckets except "upcoming" are computed from today's day boundary;
// "upcoming" compares against the current instant.
func matchesDate(event *models.Event, bucket string, now time.Time) bool {
	if bucket == "" || bucket == models.DateBucketAll {
		return true
	}

	start, ok := eventStart(event, now.Location())
	if !ok {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case models.DateBucketToday:
		return !start.Before(today) && start.Before(today.AddDate(0, 0, 1))
	case models.DateBucketThisWeek:
		return !start.Before(today) && start.Before(today.AddDate(0, 0, 7))
	case models.DateBucketThisMonth:
		return !start.Before(today) && start.Before(today.AddDate(0, 1, 0))
	case models.DateBucketUpcoming:
		return start.After(now)
	default:
		return true
	}
}

// eventStart resolves the event's start instant from its date and
// optional time strings.
func eventStart(event *models.Event, loc *time.Location) (time.Time, bool) {
	if event.StartDate == "" {
		return time.Time{}, false
	}

	if event.StartTime != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04:05", event.StartDate+" "+event.StartTime, loc)
		if err == nil {
			return t, true
		}
	}

	t, err := time.ParseInLocation("2006-01-02", event.StartDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// matchesLocation is a case-insensitive substring match against venue
// address, venue name, or venue city.
func matchesLocation(event *models.Event, location string) bool {
	if location == "" {
		return true
	}
	location = strings.ToLower(location)

	return strings.Contains(strings.ToLower(event.Venue.Address), location) ||
		strings.Contains(strings.ToLower(event.Venue.Name), location) ||
		strings.Contains(strings.ToLower(event.Venue.City), location)
}

// matchesPrice checks the requested price bucket. Events with no price
// information at all count as free.
func matchesPrice(event *models.Event, bucket string) bool {
	switch bucket {
	case models.PriceBucketFree:
		if len(event.PriceRanges) == 0 {
			return true
		}
		for _, pr := range event.PriceRanges {
			if pr.Min == 0 {
				return true
			}
		}
		return false
	case models.PriceBucketPaid:
		for _, pr := range event.PriceRanges {
			if pr.Min > 0 {
				return true
			}
		}
		return false
	default:
		return true
	}
}
