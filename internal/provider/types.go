// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

// Raw wire types mirroring the provider's discovery API responses.
// Field shapes follow the provider contract exactly; normalization into
// the internal Event model happens in the normalize package.

// SearchResponse is the paginated envelope of an event search.
// An absent Embedded means zero results, not an error.
type SearchResponse struct {
	Embedded *EmbeddedEvents `json:"_embedded,omitempty"`
	Page     PageInfo        `json:"page"`
}

// EmbeddedEvents holds the event list of a search response.
type EmbeddedEvents struct {
	Events []RawEvent `json:"events"`
}

// PageInfo is the provider's pagination block.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// EventPage is the adapter-level result of an event search.
type EventPage struct {
	Events []RawEvent `json:"events"`
	Page   PageInfo   `json:"page"`
}

// RawEvent is one unmodified provider event record.
type RawEvent struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	URL             string            `json:"url,omitempty"`
	Info            string            `json:"info,omitempty"`
	Description     string            `json:"description,omitempty"`
	PleaseNote      string            `json:"pleaseNote,omitempty"`
	Images          []RawImage        `json:"images,omitempty"`
	Dates           *RawDates         `json:"dates,omitempty"`
	Classifications []RawClass        `json:"classifications,omitempty"`
	PriceRanges     []RawPriceRange   `json:"priceRanges,omitempty"`
	Sales           *RawSales         `json:"sales,omitempty"`
	Embedded        *RawEventEmbedded `json:"_embedded,omitempty"`
}

// RawEventEmbedded carries the venue and attraction arrays of an event.
type RawEventEmbedded struct {
	Venues      []RawVenue      `json:"venues,omitempty"`
	Attractions []RawAttraction `json:"attractions,omitempty"`
}

// RawImage is a provider image entry.
type RawImage struct {
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Ratio    string `json:"ratio,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// RawDates is the provider's date block.
type RawDates struct {
	Start    *RawDate   `json:"start,omitempty"`
	End      *RawDate   `json:"end,omitempty"`
	Timezone string     `json:"timezone,omitempty"`
	Status   *RawStatus `json:"status,omitempty"`
}

// RawDate is one end of a date range.
type RawDate struct {
	LocalDate      string `json:"localDate,omitempty"`
	LocalTime      string `json:"localTime,omitempty"`
	DateTime       string `json:"dateTime,omitempty"`
	DateTBD        bool   `json:"dateTBD,omitempty"`
	DateTBA        bool   `json:"dateTBA,omitempty"`
	TimeTBA        bool   `json:"timeTBA,omitempty"`
	NoSpecificTime bool   `json:"noSpecificTime,omitempty"`
}

// RawStatus is the provider's lifecycle status block.
type RawStatus struct {
	Code string `json:"code,omitempty"`
}

// RawClass is one classification entry (segment/genre/subGenre triple).
type RawClass struct {
	Primary  bool        `json:"primary,omitempty"`
	Segment  *RawNameRef `json:"segment,omitempty"`
	Genre    *RawNameRef `json:"genre,omitempty"`
	SubGenre *RawNameRef `json:"subGenre,omitempty"`
}

// RawNameRef is an {id, name} pair.
type RawNameRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// RawPriceRange is a structured price entry. Min and Max are declared as
// interface{} because the provider has been observed emitting both numbers
// and quoted strings; coercion happens in the normalizer.
type RawPriceRange struct {
	Type     string      `json:"type,omitempty"`
	Currency string      `json:"currency,omitempty"`
	Min      interface{} `json:"min,omitempty"`
	Max      interface{} `json:"max,omitempty"`
}

// RawSales is the provider's sales block.
type RawSales struct {
	Public   *RawSaleWindow   `json:"public,omitempty"`
	Presales []RawPresaleInfo `json:"presales,omitempty"`
}

// RawSaleWindow is a public sale window.
type RawSaleWindow struct {
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
}

// RawPresaleInfo is a named presale window.
type RawPresaleInfo struct {
	Name          string `json:"name,omitempty"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
}

// RawVenue is a provider venue record.
type RawVenue struct {
	ID         string          `json:"id,omitempty"`
	Name       string          `json:"name,omitempty"`
	PostalCode string          `json:"postalCode,omitempty"`
	Address    *RawAddress     `json:"address,omitempty"`
	City       *RawCity        `json:"city,omitempty"`
	State      *RawState       `json:"state,omitempty"`
	Country    *RawCountry     `json:"country,omitempty"`
	Location   *RawGeoLocation `json:"location,omitempty"`
}

// RawAddress is a venue street address.
type RawAddress struct {
	Line1 string `json:"line1,omitempty"`
	Line2 string `json:"line2,omitempty"`
}

// RawCity is a venue city.
type RawCity struct {
	Name string `json:"name,omitempty"`
}

// RawState is a venue state or province.
type RawState struct {
	Name      string `json:"name,omitempty"`
	StateCode string `json:"stateCode,omitempty"`
}

// RawCountry is a venue country.
type RawCountry struct {
	Name        string `json:"name,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// RawGeoLocation is a venue coordinate pair. The provider serializes
// coordinates as strings.
type RawGeoLocation struct {
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// RawAttraction is a performer/participant record.
type RawAttraction struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ClassificationResponse is the envelope of the classifications endpoint.
type ClassificationResponse struct {
	Embedded *EmbeddedClassifications `json:"_embedded,omitempty"`
}

// EmbeddedClassifications holds the classification list.
type EmbeddedClassifications struct {
	Classifications []RawClassification `json:"classifications"`
}

// RawClassification is one top-level classification record.
type RawClassification struct {
	Segment *RawNameRef `json:"segment,omitempty"`
}

// Segment is a classification summary exposed to callers.
type Segment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FaultResponse covers the provider's observed error body shapes. Only one
// of the branches is populated for a given response.
type FaultResponse struct {
	Fault   *Fault       `json:"fault,omitempty"`
	Errors  []FaultError `json:"errors,omitempty"`
	Message string       `json:"message,omitempty"`
	ErrText string       `json:"error,omitempty"`
}

// Fault is the gateway-style fault block.
type Fault struct {
	FaultString string `json:"faultstring,omitempty"`
}

// FaultError is one entry of the errors-array shape.
type FaultError struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}
