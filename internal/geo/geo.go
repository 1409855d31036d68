// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package geo provides best-effort forward and reverse geocoding against
// unauthenticated public services. Failures return errors the caller
// treats as "no location"; nothing here is load-bearing for correctness.
package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/config"
)

// Place is one forward-geocoding result.
type Place struct {
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// Address holds the subset of address fields the application consumes.
type Address struct {
	City    string `json:"city,omitempty"`
	Town    string `json:"town,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// CityName returns the best city-like name of the place.
func (p *Place) CityName() string {
	if p.Address.City != "" {
		return p.Address.City
	}
	return p.Address.Town
}

// reverseResult is the reverse-geocoding response shape.
type reverseResult struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
}

// Client calls the geocoding services. Safe for concurrent use.
type Client struct {
	forwardURL string
	reverseURL string
	http       *http.Client
}

// NewClient creates a geocoding client from configuration.
func NewClient(cfg *config.GeocodingConfig) *Client {
	return &Client{
		forwardURL: cfg.ForwardURL,
		reverseURL: cfg.ReverseURL,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

// Forward resolves a free-text query to candidate places.
func (c *Client) Forward(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", "5")

	var places []Place
	if err := c.getJSON(ctx, c.forwardURL+"?"+q.Encode(), &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse resolves coordinates to a city name. Preference order is
// city, then locality, then principal subdivision.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))

	var result reverseResult
	if err := c.getJSON(ctx, c.reverseURL+"?"+q.Encode(), &result); err != nil {
		return "", err
	}

	switch {
	case result.City != "":
		return result.City, nil
	case result.Locality != "":
		return result.Locality, nil
	case result.PrincipalSubdivision != "":
		return result.PrincipalSubdivision, nil
	}
	return "", fmt.Errorf("no city in reverse geocoding result")
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building geocoding request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding geocoding response: %w", err)
	}
	return nil
}
