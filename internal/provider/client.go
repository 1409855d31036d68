// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/config"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/metrics"
)

// maxErrorBodySize caps how much of an error response body is read for
// fault extraction, preventing unbounded allocation.
const maxErrorBodySize = 64 * 1024

// Source is the adapter contract consumed by the API layer and the
// recommendation engine. Implemented by Client and BreakerClient, and by
// fakes in tests.
type Source interface {
	FetchEvents(ctx context.Context, params SearchParams) (*EventPage, error)
	FetchEventByID(ctx context.Context, id string) (*RawEvent, error)
	FetchCategories(ctx context.Context) ([]Segment, error)
}

// Client is the typed HTTP client for the provider's discovery API.
// Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.ProviderConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchEvents searches the provider for events matching params.
// Date parameters are validated before any network I/O; a missing
// _embedded block is returned as an empty page, not an error.
func (c *Client) FetchEvents(ctx context.Context, params SearchParams) (*EventPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := c.getJSON(ctx, "events", "/events.json", params.Query(), &resp); err != nil {
		return nil, err
	}

	page := &EventPage{Events: []RawEvent{}, Page: resp.Page}
	if resp.Embedded != nil {
		page.Events = resp.Embedded.Events
	} else {
		// Zero results: the provider omits the pagination totals too.
		page.Page = PageInfo{}
	}

	logging.Ctx(ctx).Debug().
		Int("events", len(page.Events)).
		Int("total", page.Page.TotalElements).
		Msg("provider search complete")

	return page, nil
}

// FetchEventByID retrieves a single raw event record.
func (c *Client) FetchEventByID(ctx context.Context, id string) (*RawEvent, error) {
	var raw RawEvent
	path := "/events/" + url.PathEscape(id) + ".json"
	if err := c.getJSON(ctx, "event", path, url.Values{}, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// FetchCategories retrieves the provider's classification summaries.
func (c *Client) FetchCategories(ctx context.Context) ([]Segment, error) {
	var resp ClassificationResponse
	if err := c.getJSON(ctx, "categories", "/classifications.json", url.Values{}, &resp); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0)
	if resp.Embedded == nil {
		return segments, nil
	}
	for _, class := range resp.Embedded.Classifications {
		if class.Segment == nil || class.Segment.ID == "" {
			continue
		}
		segments = append(segments, Segment{ID: class.Segment.ID, Name: class.Segment.Name})
	}
	return segments, nil
}

// getJSON issues a GET against the provider and decodes the response into
// out. Non-2xx statuses are mapped to the typed error taxonomy.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	start := time.Now()
	err := c.doGetJSON(ctx, path, query, out)

	kind := ""
	if err != nil {
		kind = KindOf(err).String()
	}
	metrics.ObserveProviderRequest(endpoint, start, kind)

	return err
}

func (c *Client) doGetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}

	reqURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errRequestSetup(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errUnreachable(err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errUpstreamFault(resp.StatusCode, "decoding provider response: "+err.Error())
	}

	return nil
}

// errorFromResponse maps a non-2xx response to a typed error.
func (c *Client) errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errUnauthorized()
	case http.StatusTooManyRequests:
		return errRateLimited()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errUpstreamFault(resp.StatusCode, "")
	}

	return errUpstreamFault(resp.StatusCode, extractFaultMessage(body))
}

// extractFaultMessage pulls a human-readable message out of the provider's
// known fault body shapes: fault.faultstring, errors[0].detail, message,
// or error. Returns "" when none match.
func extractFaultMessage(body []byte) string {
	var fault FaultResponse
	if err := json.Unmarshal(body, &fault); err != nil {
		return ""
	}

	switch {
	case fault.Fault != nil && fault.Fault.FaultString != "":
		return fault.Fault.FaultString
	case len(fault.Errors) > 0 && fault.Errors[0].Detail != "":
		return fault.Errors[0].Detail
	case fault.Message != "":
		return fault.Message
	case fault.ErrText != "":
		return fault.ErrText
	}
	return ""
}
