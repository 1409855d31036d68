// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

import (
	"net/url"
	"regexp"
	"strconv"
)

// DateTimeExample is the reference value echoed in date-format errors.
const DateTimeExample = "2020-08-01T14:00:00Z"

// dateTimePattern is the exact outbound datetime contract: UTC, seconds
// precision, trailing Z. Anything else is rejected before transmission.
var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// ValidDateTimeParam reports whether s satisfies the provider's
// YYYY-MM-DDTHH:mm:ssZ datetime contract.
func ValidDateTimeParam(s string) bool {
	return dateTimePattern.MatchString(s)
}

// SearchParams is the full outbound search surface. Zero-valued fields
// are stripped before the query string is built.
type SearchParams struct {
	Keyword            string
	ClassificationName string
	ClassificationID   string
	StartDateTime      string
	EndDateTime        string
	City               string
	StateCode          string
	CountryCode        string
	PostalCode         string
	Radius             int
	Unit               string // miles or km
	GeoPoint           string
	LatLong            string
	VenueID            string
	AttractionID       string
	GenreID            string
	SegmentID          string
	IncludeTBA         string // yes, no, only
	IncludeTBD         string
	IncludeFamily      string
	Locale             string
	Size               int
	Page               int
	Sort               string
}

// Validate checks the fail-fast parameter constraints. Date parameters are
// the only ones the provider rejects with an opaque 400, so they are the
// only ones validated locally.
func (p *SearchParams) Validate() error {
	if p.StartDateTime != "" && !ValidDateTimeParam(p.StartDateTime) {
		return errInvalidDateFormat("startDateTime", p.StartDateTime)
	}
	if p.EndDateTime != "" && !ValidDateTimeParam(p.EndDateTime) {
		return errInvalidDateFormat("endDateTime", p.EndDateTime)
	}
	return nil
}

// Query builds the outbound query string values, omitting unset fields.
func (p *SearchParams) Query() url.Values {
	q := url.Values{}

	setStr := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}

	setStr("keyword", p.Keyword)
	setStr("classificationName", p.ClassificationName)
	setStr("classificationId", p.ClassificationID)
	setStr("startDateTime", p.StartDateTime)
	setStr("endDateTime", p.EndDateTime)
	setStr("city", p.City)
	setStr("stateCode", p.StateCode)
	setStr("countryCode", p.CountryCode)
	setStr("postalCode", p.PostalCode)
	if p.Radius > 0 {
		q.Set("radius", strconv.Itoa(p.Radius))
	}
	setStr("unit", p.Unit)
	setStr("geoPoint", p.GeoPoint)
	setStr("latlong", p.LatLong)
	setStr("venueId", p.VenueID)
	setStr("attractionId", p.AttractionID)
	setStr("genreId", p.GenreID)
	setStr("segmentId", p.SegmentID)
	setStr("includeTBA", p.IncludeTBA)
	setStr("includeTBD", p.IncludeTBD)
	setStr("includeFamily", p.IncludeFamily)
	setStr("locale", p.Locale)
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	setStr("sort", p.Sort)

	return q
}
