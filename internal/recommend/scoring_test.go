// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package recommend

import (
	"testing"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/normalize"
)

func TestMatchesPreferences(t *testing.T) {
	tests := []struct {
		name       string
		event      models.Event
		categories []string
		want       bool
	}{
		{
			name: "umbrella segment self-match despite unknown genre",
			event: models.Event{
				Category: models.NamedRef{ID: normalize.SegmentMusicID},
				Genre:    models.NamedRef{ID: "genre-the-user-never-picked"},
			},
			categories: []string{normalize.SegmentMusicID},
			want:       true,
		},
		{
			name: "sports umbrella self-match",
			event: models.Event{
				Category: models.NamedRef{ID: normalize.SegmentSportsID},
			},
			categories: []string{normalize.SegmentSportsID},
			want:       true,
		},
		{
			name: "genre id match",
			event: models.Event{
				Category: models.NamedRef{ID: "seg-other"},
				Genre:    models.NamedRef{ID: "genre-jazz"},
			},
			categories: []string{"genre-jazz"},
			want:       true,
		},
		{
			name: "subgenre id match",
			event: models.Event{
				SubGenre: models.NamedRef{ID: "sub-bebop"},
			},
			categories: []string{"sub-bebop"},
			want:       true,
		},
		{
			name: "no overlap",
			event: models.Event{
				Category: models.NamedRef{ID: normalize.SegmentFilmID},
			},
			categories: []string{normalize.SegmentMusicID},
			want:       false,
		},
		{
			name:       "no categories never matches",
			event:      models.Event{Category: models.NamedRef{ID: normalize.SegmentMusicID}},
			categories: nil,
			want:       false,
		},
		{
			name: "empty event ids do not match empty-string category",
			event: models.Event{},
			categories: []string{""},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &models.UserPreferences{Categories: tt.categories}
			if got := MatchesPreferences(&tt.event, prefs); got != tt.want {
				t.Errorf("MatchesPreferences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	prefs := &models.UserPreferences{
		Categories: []string{normalize.SegmentMusicID},
		Locations:  []string{"Austin"},
		MaxPrice:   50,
	}

	tests := []struct {
		name  string
		event models.Event
		want  int
	}{
		{
			name: "full match",
			event: models.Event{
				Category:    models.NamedRef{ID: normalize.SegmentMusicID},
				Venue:       models.Venue{City: "Austin"},
				PriceRanges: []models.PriceRange{{Min: 20, Max: 45}},
				Status:      models.StatusOnSale,
			},
			want: 16,
		},
		{
			name: "category only with no price info",
			event: models.Event{
				Category: models.NamedRef{ID: normalize.SegmentMusicID},
				Venue:    models.Venue{City: "Dallas"},
			},
			want: 12, // 10 category + 2 no-price
		},
		{
			name: "price over budget loses the price bonus",
			event: models.Event{
				Category:    models.NamedRef{ID: normalize.SegmentMusicID},
				PriceRanges: []models.PriceRange{{Min: 80}},
			},
			want: 10,
		},
		{
			name: "location and onsale only",
			event: models.Event{
				Category:    models.NamedRef{ID: normalize.SegmentFilmID},
				Venue:       models.Venue{Address: "500 Austin Ave"},
				PriceRanges: []models.PriceRange{{Min: 200}},
				Status:      "OnSale",
			},
			want: 4,
		},
		{
			name:  "nothing matches except the no-price bonus",
			event: models.Event{},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.event, prefs); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreNilPreferences(t *testing.T) {
	event := models.Event{Status: models.StatusOnSale}
	if got := Score(&event, nil); got != 0 {
		t.Errorf("Score(nil prefs) = %d, want 0", got)
	}
}
