// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package models

// UserPreferences captures the onboarding choices that drive
// recommendations. Categories hold provider segment IDs; Locations hold
// city names, insertion-ordered, with the first entry treated as primary.
type UserPreferences struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	MaxPrice   float64  `json:"maxPrice"`
}

// IsEmpty reports whether the preferences carry no usable signal.
func (p *UserPreferences) IsEmpty() bool {
	return p == nil || (len(p.Categories) == 0 && len(p.Locations) == 0)
}

// PrimaryLocation returns the first preferred location, or "".
func (p *UserPreferences) PrimaryLocation() string {
	if p == nil || len(p.Locations) == 0 {
		return ""
	}
	return p.Locations[0]
}

// UserProfile is the locally stored profile object. There is no account
// system behind it; it exists so the UI can greet the user by name.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// StoredLocation is a remembered location with resolved coordinates.
type StoredLocation struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Date bucket values accepted by the filter engine.
const (
	DateBucketToday     = "today"
	DateBucketThisWeek  = "this-week"
	DateBucketThisMonth = "this-month"
	DateBucketUpcoming  = "upcoming"
	DateBucketAll       = "all"
)

// Price bucket values accepted by the filter engine.
const (
	PriceBucketFree = "free"
	PriceBucketPaid = "paid"
	PriceBucketAll  = "all"
)

// FilterSpec is the client-side filter applied to normalized events.
// All fields are optional; zero values match everything.
type FilterSpec struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty" validate:"omitempty,datebucket"`
	Location string `json:"location,omitempty"`
	Price    string `json:"price,omitempty" validate:"omitempty,pricebucket"`
}
