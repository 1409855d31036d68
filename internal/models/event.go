// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package models defines the core entities shared across Eventdisc:
// the normalized Event and its sub-entities, user preferences, the filter
// specification, and the HTTP response envelope.
package models

// Event is the normalized internal representation of a provider listing.
// It is constructed once by the normalizer and read-only downstream.
//
// Date fields are ISO calendar dates (YYYY-MM-DD) and time fields are
// HH:MM:SS 24-hour strings; both degrade to "" when the source value is
// missing or fails validation. Timezone is a verified IANA identifier
// or "".
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
	Timezone    string       `json:"timezone"`
	Venue       Venue        `json:"venue"`
	Category    NamedRef     `json:"category"`
	Genre       NamedRef     `json:"genre"`
	SubGenre    NamedRef     `json:"subGenre"`
	PriceRanges []PriceRange `json:"priceRanges"`
	Images      []Image      `json:"images"`
	Status      string       `json:"status"`
	URL         string       `json:"url"`
	Attractions []Attraction `json:"attractions"`
	Sales       *Sales       `json:"sales,omitempty"`
}

// Venue is the primary venue of an event. Location defaults to (0,0)
// when the source carries no coordinates.
type Venue struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	PostalCode string      `json:"postalCode"`
	Country    string      `json:"country"`
	Location   Coordinates `json:"location"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NamedRef is a taxonomy reference (category, genre, sub-genre).
// Both fields default to "" when the source taxonomy is missing that level.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceRange is a structured price entry, values rounded to 2 decimals.
type PriceRange struct {
	Type     string  `json:"type,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Image is a provider image reference.
type Image struct {
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Ratio    string `json:"ratio,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Attraction is a performer or participant reference.
type Attraction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sales holds public sale and presale windows.
type Sales struct {
	StartDateTime string    `json:"startDateTime,omitempty"`
	EndDateTime   string    `json:"endDateTime,omitempty"`
	Presales      []Presale `json:"presales,omitempty"`
}

// Presale is a named presale window.
type Presale struct {
	Name          string `json:"name"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
}

// Event status values as normalized (lowercased) from the provider.
const (
	StatusOnSale      = "onsale"
	StatusOffSale     = "offsale"
	StatusCancelled   = "cancelled"
	StatusPostponed   = "postponed"
	StatusRescheduled = "rescheduled"
)

// CheapestPrice returns the lowest Min across price ranges.
// The second return is false when the event has no price information.
func (e *Event) CheapestPrice() (float64, bool) {
	if len(e.PriceRanges) == 0 {
		return 0, false
	}
	min := e.PriceRanges[0].Min
	for _, pr := range e.PriceRanges[1:] {
		if pr.Min < min {
			min = pr.Min
		}
	}
	return min, true
}
