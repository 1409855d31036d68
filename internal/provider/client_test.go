// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL: srv.URL,
		apiKey:  "test-key",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchEventsEmptyEmbedded(t *testing.T) {
	// A page past the last result has no _embedded block; that is zero
	// results, not a failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":{"size":20,"totalElements":100,"totalPages":5,"number":99}}`))
	}))
	defer srv.Close()

	page, err := newTestClient(srv).FetchEvents(context.Background(), SearchParams{})
	if err != nil {
		t.Fatalf("FetchEvents() error = %v", err)
	}
	if len(page.Events) != 0 {
		t.Errorf("Events = %v, want empty", page.Events)
	}
	if page.Page != (PageInfo{}) {
		t.Errorf("Page = %+v, want zeroed pagination", page.Page)
	}
}

func TestFetchEventsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("keyword"); got != "jazz" {
			t.Errorf("keyword = %q, want jazz", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_embedded": {"events": [{"id": "ev1", "name": "Jazz Night"}]},
			"page": {"size": 20, "totalElements": 1, "totalPages": 1, "number": 0}
		}`))
	}))
	defer srv.Close()

	page, err := newTestClient(srv).FetchEvents(context.Background(), SearchParams{Keyword: "jazz"})
	if err != nil {
		t.Fatalf("FetchEvents() error = %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].ID != "ev1" {
		t.Errorf("Events = %+v, want one event ev1", page.Events)
	}
	if page.Page.TotalElements != 1 {
		t.Errorf("TotalElements = %d, want 1", page.Page.TotalElements)
	}
}

func TestFetchEventsInvalidDateFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchEvents(context.Background(), SearchParams{
		StartDateTime: "08/01/2020",
	})
	if !IsKind(err, KindInvalidDateFormat) {
		t.Fatalf("error = %v, want invalid-date-format", err)
	}
	if called {
		t.Error("request reached the server despite invalid date parameter")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{}`,
			wantKind: KindUnauthorized,
		},
		{
			name:     "rate limited",
			status:   http.StatusTooManyRequests,
			body:     `{}`,
			wantKind: KindRateLimited,
		},
		{
			name:     "gateway fault body",
			status:   http.StatusBadRequest,
			body:     `{"fault":{"faultstring":"Invalid ApiKey"}}`,
			wantKind: KindUpstreamFault,
			wantMsg:  "Invalid ApiKey",
		},
		{
			name:     "errors array body",
			status:   http.StatusBadRequest,
			body:     `{"errors":[{"code":"DIS1004","detail":"Query param is invalid"}]}`,
			wantKind: KindUpstreamFault,
			wantMsg:  "Query param is invalid",
		},
		{
			name:     "message body",
			status:   http.StatusInternalServerError,
			body:     `{"message":"something broke"}`,
			wantKind: KindUpstreamFault,
			wantMsg:  "something broke",
		},
		{
			name:     "unrecognized body",
			status:   http.StatusBadGateway,
			body:     `<html>nope</html>`,
			wantKind: KindUpstreamFault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).FetchEvents(context.Background(), SearchParams{})
			if !IsKind(err, tt.wantKind) {
				t.Fatalf("error = %v (kind %v), want kind %v", err, KindOf(err), tt.wantKind)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFetchEventsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv).FetchEvents(context.Background(), SearchParams{})
	if !IsKind(err, KindUnreachable) {
		t.Errorf("error = %v, want unreachable kind", err)
	}
}

func TestFetchEventByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/events/ev42") {
			t.Errorf("path = %q, want /events/ev42.json", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"ev42","name":"The Answer Tour"}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).FetchEventByID(context.Background(), "ev42")
	if err != nil {
		t.Fatalf("FetchEventByID() error = %v", err)
	}
	if raw.ID != "ev42" || raw.Name != "The Answer Tour" {
		t.Errorf("raw = %+v", raw)
	}
}

func TestFetchCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_embedded": {"classifications": [
				{"segment": {"id": "seg1", "name": "Music"}},
				{"segment": {"id": "", "name": "nameless"}},
				{}
			]}
		}`))
	}))
	defer srv.Close()

	segments, err := newTestClient(srv).FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("segments = %+v, want the single well-formed entry", segments)
	}
	if segments[0].ID != "seg1" || segments[0].Name != "Music" {
		t.Errorf("segment = %+v", segments[0])
	}
}

func TestKindOfForeignError(t *testing.T) {
	if KindOf(context.Canceled) != KindUnknown {
		t.Errorf("KindOf(foreign error) = %v, want KindUnknown", KindOf(context.Canceled))
	}
	if KindOf(nil) != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want KindUnknown", KindOf(nil))
	}
}
