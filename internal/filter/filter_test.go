// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package filter

import (
	"testing"
	"time"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
)

// fixedNow is a Tuesday at 12:00 UTC for deterministic bucket edges.
var fixedNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func TestMatchesSearch(t *testing.T) {
	event := models.Event{
		Name:        "Symphony Under the Stars",
		Description: "An outdoor orchestral evening",
		Venue:       models.Venue{Name: "Riverfront Amphitheater", Address: "100 River Rd"},
		Category:    models.NamedRef{Name: "Music"},
		Genre:       models.NamedRef{Name: "Classical"},
		SubGenre:    models.NamedRef{Name: "Orchestral"},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"symphony", true},
		{"OUTDOOR", true},
		{"amphitheater", true},
		{"river rd", true},
		{"classical", true},
		{"orchestral", true},
		{"music", true},
		{"jazz", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Matches(&event, models.FilterSpec{Search: tt.term}, fixedNow)
			if got != tt.want {
				t.Errorf("search %q = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	event := models.Event{Category: models.NamedRef{Name: "Arts & Theatre"}}

	tests := []struct {
		category string
		want     bool
	}{
		{"", true},
		{"Arts & Theatre", true},
		{"arts & theatre", true},
		{"Arts", false}, // exact name, not substring
		{"Music", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Matches(&event, models.FilterSpec{Category: tt.category}, fixedNow)
			if got != tt.want {
				t.Errorf("category %q = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestMatchesDateBuckets(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		startTime string
		bucket    string
		want      bool
	}{
		{"today matches same day morning", "2026-09-15", "08:00:00", models.DateBucketToday, true},
		{"today matches bare date", "2026-09-15", "", models.DateBucketToday, true},
		{"today rejects tomorrow", "2026-09-16", "", models.DateBucketToday, false},
		{"today rejects yesterday", "2026-09-14", "", models.DateBucketToday, false},

		{"week includes day six", "2026-09-21", "", models.DateBucketThisWeek, true},
		{"week excludes day seven", "2026-09-22", "", models.DateBucketThisWeek, false},
		{"week includes earlier today", "2026-09-15", "01:00:00", models.DateBucketThisWeek, true},

		{"month includes four weeks out", "2026-10-14", "", models.DateBucketThisMonth, true},
		{"month excludes same day next month", "2026-10-15", "", models.DateBucketThisMonth, false},

		{"upcoming includes one second ahead", "2026-09-15", "12:00:01", models.DateBucketUpcoming, true},
		{"upcoming excludes the exact instant", "2026-09-15", "12:00:00", models.DateBucketUpcoming, false},
		{"upcoming excludes one second ago", "2026-09-15", "11:59:59", models.DateBucketUpcoming, false},
		{"upcoming excludes bare today date", "2026-09-15", "", models.DateBucketUpcoming, false},

		{"all matches anything", "1999-01-01", "", models.DateBucketAll, true},
		{"empty bucket matches anything", "1999-01-01", "", "", true},

		{"unparseable date fails buckets", "", "", models.DateBucketToday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := models.Event{StartDate: tt.startDate, StartTime: tt.startTime}
			got := Matches(&event, models.FilterSpec{Date: tt.bucket}, fixedNow)
			if got != tt.want {
				t.Errorf("bucket %q start %q %q = %v, want %v",
					tt.bucket, tt.startDate, tt.startTime, got, tt.want)
			}
		})
	}
}

func TestMatchesDateUnparseableDateStillPassesAll(t *testing.T) {
	event := models.Event{StartDate: ""}
	if !Matches(&event, models.FilterSpec{}, fixedNow) {
		t.Error("event with no date should pass an empty spec")
	}
}

func TestMatchesLocation(t *testing.T) {
	event := models.Event{
		Venue: models.Venue{
			Name:    "Paramount Theatre",
			Address: "913 Congress Ave",
			City:    "Austin",
		},
	}

	tests := []struct {
		location string
		want     bool
	}{
		{"", true},
		{"austin", true},
		{"congress", true},
		{"paramount", true},
		{"dallas", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got := Matches(&event, models.FilterSpec{Location: tt.location}, fixedNow)
			if got != tt.want {
				t.Errorf("location %q = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestMatchesPrice(t *testing.T) {
	tests := []struct {
		name   string
		ranges []models.PriceRange
		bucket string
		want   bool
	}{
		{"no ranges counts as free", nil, models.PriceBucketFree, true},
		{"zero-min range is free", []models.PriceRange{{Min: 0, Max: 20}}, models.PriceBucketFree, true},
		{"paid-only range is not free", []models.PriceRange{{Min: 15, Max: 40}}, models.PriceBucketFree, false},
		{"mixed ranges count as free", []models.PriceRange{{Min: 15}, {Min: 0}}, models.PriceBucketFree, true},

		{"no ranges is not paid", nil, models.PriceBucketPaid, false},
		{"positive min is paid", []models.PriceRange{{Min: 15}}, models.PriceBucketPaid, true},
		{"zero-min only is not paid", []models.PriceRange{{Min: 0}}, models.PriceBucketPaid, false},

		{"all bucket matches priced", []models.PriceRange{{Min: 15}}, models.PriceBucketAll, true},
		{"empty bucket matches unpriced", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := models.Event{PriceRanges: tt.ranges}
			got := Matches(&event, models.FilterSpec{Price: tt.bucket}, fixedNow)
			if got != tt.want {
				t.Errorf("price bucket %q = %v, want %v", tt.bucket, got, tt.want)
			}
		})
	}
}

func TestEventsPreservesOrder(t *testing.T) {
	events := []models.Event{
		{ID: "1", Name: "Jazz at the Park"},
		{ID: "2", Name: "Rock Festival"},
		{ID: "3", Name: "Jazz Brunch"},
	}

	got := Events(events, models.FilterSpec{Search: "jazz"}, fixedNow)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("order = %s,%s; want 1,3", got[0].ID, got[1].ID)
	}
}

func TestEventsCombinedSpec(t *testing.T) {
	events := []models.Event{
		{
			ID:        "match",
			Name:      "Jazz Night",
			StartDate: "2026-09-15",
			Category:  models.NamedRef{Name: "Music"},
			Venue:     models.Venue{City: "Austin"},
		},
		{
			ID:        "wrong-city",
			Name:      "Jazz Night",
			StartDate: "2026-09-15",
			Category:  models.NamedRef{Name: "Music"},
			Venue:     models.Venue{City: "Dallas"},
		},
		{
			ID:        "wrong-day",
			Name:      "Jazz Night",
			StartDate: "2026-09-20",
			Category:  models.NamedRef{Name: "Music"},
			Venue:     models.Venue{City: "Austin"},
		},
	}

	spec := models.FilterSpec{
		Search:   "jazz",
		Category: "Music",
		Date:     models.DateBucketToday,
		Location: "austin",
	}
	got := Events(events, spec, fixedNow)
	if len(got) != 1 || got[0].ID != "match" {
		t.Errorf("got %+v, want only the fully matching event", got)
	}
}
