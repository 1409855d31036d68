// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package normalize maps raw provider event records into the internal
// Event model.
//
// MapEvent is total: it always produces a value and never returns an
// error. Sub-fields that fail validation (dates, times, timezone, prices)
// degrade to empty or zero values instead of propagating failures.
//
// Venue, classification, and attraction data is taken from index 0 of the
// provider's embedded arrays only. This is a deliberate primary-
// classification-only policy, not an oversight: the UI models one venue
// and one taxonomy triple per event.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
	timezonePattern = regexp.MustCompile(`^[A-Za-z/_-]+$`)

	// Textual price extraction: a currency symbol and amount adjacent to
	// one of the pricing keywords, in either order.
	priceAfterKeyword  = regexp.MustCompile(`(?i)(?:price|ticket|cost)[^$£€\d]{0,40}([$£€])\s*(\d+(?:\.\d{1,2})?)`)
	priceBeforeKeyword = regexp.MustCompile(`(?i)([$£€])\s*(\d+(?:\.\d{1,2})?)[^$£€\d]{0,40}(?:price|ticket|cost)`)
)

// currencyBySymbol maps the recognized symbols to ISO currency codes.
var currencyBySymbol = map[string]string{
	"$": "USD",
	"£": "GBP",
	"€": "EUR",
}

// MapEvents maps a batch of raw events. Nothing is dropped.
func MapEvents(raws []provider.RawEvent) []models.Event {
	events := make([]models.Event, len(raws))
	for i := range raws {
		events[i] = MapEvent(&raws[i])
	}
	return events
}

// MapEvent maps one raw provider record into the internal Event model.
func MapEvent(raw *provider.RawEvent) models.Event {
	event := models.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: description(raw),
		URL:         raw.URL,
		ImageURL:    bestImageURL(raw.Images),
		Images:      mapImages(raw.Images),
		Venue:       mapVenue(raw),
		PriceRanges: mapPriceRanges(raw),
		Attractions: mapAttractions(raw),
		Sales:       mapSales(raw.Sales),
	}

	event.Category, event.Genre, event.SubGenre = mapClassification(raw)
	mapDates(raw.Dates, &event)

	return event
}

// description prefers the provider's description, synthesizing one from
// the info text when absent.
func description(raw *provider.RawEvent) string {
	if raw.Description != "" {
		return raw.Description
	}
	return raw.Info
}

// bestImageURL folds over the image list preferring the widest 16_9
// image; when no 16_9 image exists, the widest non-fallback image wins.
// The first image is the ultimate default.
func bestImageURL(images []provider.RawImage) string {
	if len(images) == 0 {
		return ""
	}

	best := images[0]
	bestIs169 := best.Ratio == "16_9"

	for _, img := range images[1:] {
		switch {
		case img.Ratio == "16_9" && (!bestIs169 || img.Width > best.Width):
			best = img
			bestIs169 = true
		case !bestIs169 && !img.Fallback && img.Width > best.Width:
			best = img
		}
	}

	return best.URL
}

func mapImages(images []provider.RawImage) []models.Image {
	out := make([]models.Image, len(images))
	for i, img := range images {
		out[i] = models.Image{
			URL:      img.URL,
			Width:    img.Width,
			Height:   img.Height,
			Ratio:    img.Ratio,
			Fallback: img.Fallback,
		}
	}
	return out
}

// mapDates fills the date, time, timezone, and status fields.
// endDate falls back to startDate when absent or invalid.
func mapDates(dates *provider.RawDates, event *models.Event) {
	if dates == nil {
		return
	}

	if dates.Start != nil {
		event.StartDate = validDate(dates.Start.LocalDate)
		event.StartTime = validTime(dates.Start.LocalTime)
	}

	event.EndDate = event.StartDate
	if dates.End != nil {
		if end := validDate(dates.End.LocalDate); end != "" {
			event.EndDate = end
		}
		event.EndTime = validTime(dates.End.LocalTime)
	}

	event.Timezone = validTimezone(dates.Timezone)

	if dates.Status != nil {
		event.Status = strings.ToLower(dates.Status.Code)
	}
}

// validDate returns s when it is a well-formed, possible calendar date,
// else "".
func validDate(s string) string {
	if !datePattern.MatchString(s) {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// validTime returns s when it is a well-formed HH:MM:SS string with each
// component in range, else "".
func validTime(s string) string {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	if hours > 23 || minutes > 59 || seconds > 59 {
		return ""
	}
	return s
}

// validTimezone returns s when it is a loadable IANA zone identifier,
// else "".
func validTimezone(s string) string {
	if s == "" || !timezonePattern.MatchString(s) {
		return ""
	}
	if _, err := time.LoadLocation(s); err != nil {
		return ""
	}
	return s
}

func mapVenue(raw *provider.RawEvent) models.Venue {
	if raw.Embedded == nil || len(raw.Embedded.Venues) == 0 {
		return models.Venue{}
	}

	// Primary venue only.
	rv := raw.Embedded.Venues[0]
	venue := models.Venue{
		ID:         rv.ID,
		Name:       rv.Name,
		PostalCode: rv.PostalCode,
	}

	if rv.Address != nil {
		venue.Address = rv.Address.Line1
	}
	if rv.City != nil {
		venue.City = rv.City.Name
	}
	if rv.State != nil {
		venue.State = rv.State.Name
	}
	if rv.Country != nil {
		venue.Country = rv.Country.Name
	}
	if rv.Location != nil {
		venue.Location = models.Coordinates{
			Latitude:  parseCoord(rv.Location.Latitude),
			Longitude: parseCoord(rv.Location.Longitude),
		}
	}

	return venue
}

// parseCoord parses a provider coordinate string, defaulting to 0.
func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func mapClassification(raw *provider.RawEvent) (category, genre, subGenre models.NamedRef) {
	if len(raw.Classifications) == 0 {
		return
	}

	// Primary classification only.
	class := raw.Classifications[0]
	if class.Segment != nil {
		category = models.NamedRef{ID: class.Segment.ID, Name: class.Segment.Name}
		if category.Name == "" {
			category.Name = CategoryDisplayName(category.ID)
		}
	}
	if class.Genre != nil {
		genre = models.NamedRef{ID: class.Genre.ID, Name: class.Genre.Name}
	}
	if class.SubGenre != nil {
		subGenre = models.NamedRef{ID: class.SubGenre.ID, Name: class.SubGenre.Name}
	}
	return
}

// mapPriceRanges converts structured price ranges, coercing invalid
// numeric input to 0 and rounding to 2 decimals. When no structured
// pricing exists, a best-effort textual extraction over the description
// and info text may produce a single synthetic range.
func mapPriceRanges(raw *provider.RawEvent) []models.PriceRange {
	if len(raw.PriceRanges) > 0 {
		out := make([]models.PriceRange, len(raw.PriceRanges))
		for i, pr := range raw.PriceRanges {
			out[i] = models.PriceRange{
				Type:     pr.Type,
				Currency: pr.Currency,
				Min:      round2(coerceFloat(pr.Min)),
				Max:      round2(coerceFloat(pr.Max)),
			}
		}
		return out
	}

	if pr, ok := extractPriceFromText(raw.Description + " " + raw.Info); ok {
		return []models.PriceRange{pr}
	}

	return []models.PriceRange{}
}

// extractPriceFromText scans text for a currency symbol and amount near a
// pricing keyword, producing a min==max synthetic range.
func extractPriceFromText(text string) (models.PriceRange, bool) {
	m := priceAfterKeyword.FindStringSubmatch(text)
	if m == nil {
		m = priceBeforeKeyword.FindStringSubmatch(text)
	}
	if m == nil {
		return models.PriceRange{}, false
	}

	amount, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.PriceRange{}, false
	}
	amount = round2(amount)

	return models.PriceRange{
		Currency: currencyBySymbol[m[1]],
		Min:      amount,
		Max:      amount,
	}, true
}

// coerceFloat converts the provider's loosely typed numeric values.
// Numbers pass through, numeric strings are parsed, everything else
// (including NaN and infinities) becomes 0.
func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapAttractions(raw *provider.RawEvent) []models.Attraction {
	if raw.Embedded == nil || len(raw.Embedded.Attractions) == 0 {
		return []models.Attraction{}
	}

	out := make([]models.Attraction, len(raw.Embedded.Attractions))
	for i, a := range raw.Embedded.Attractions {
		out[i] = models.Attraction{ID: a.ID, Name: a.Name, URL: a.URL}
	}
	return out
}

func mapSales(sales *provider.RawSales) *models.Sales {
	if sales == nil {
		return nil
	}

	out := &models.Sales{}
	if sales.Public != nil {
		out.StartDateTime = sales.Public.StartDateTime
		out.EndDateTime = sales.Public.EndDateTime
	}
	for _, p := range sales.Presales {
		out.Presales = append(out.Presales, models.Presale{
			Name:          p.Name,
			StartDateTime: p.StartDateTime,
			EndDateTime:   p.EndDateTime,
		})
	}
	return out
}
