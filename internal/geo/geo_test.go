// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(forwardURL, reverseURL string) *Client {
	return &Client{
		forwardURL: forwardURL,
		reverseURL: reverseURL,
		http:       &http.Client{Timeout: 5 * time.Second},
	}
}

func TestForward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Austin" {
			t.Errorf("q = %q, want Austin", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"lat": "30.2672", "lon": "-97.7431", "display_name": "Austin, Texas",
			 "address": {"city": "Austin", "state": "Texas", "country": "United States"}}
		]`))
	}))
	defer srv.Close()

	places, err := testClient(srv.URL, "").Forward(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("places = %d, want 1", len(places))
	}
	if places[0].CityName() != "Austin" {
		t.Errorf("CityName() = %q, want Austin", places[0].CityName())
	}
}

func TestPlaceCityNameTownFallback(t *testing.T) {
	p := Place{Address: Address{Town: "Round Rock"}}
	if got := p.CityName(); got != "Round Rock" {
		t.Errorf("CityName() = %q, want town fallback", got)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "city preferred",
			body: `{"city": "Austin", "locality": "Downtown", "principalSubdivision": "Texas"}`,
			want: "Austin",
		},
		{
			name: "locality fallback",
			body: `{"locality": "Downtown", "principalSubdivision": "Texas"}`,
			want: "Downtown",
		},
		{
			name: "subdivision fallback",
			body: `{"principalSubdivision": "Texas"}`,
			want: "Texas",
		},
		{
			name:    "nothing resolvable",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("latitude") == "" {
					t.Error("latitude query parameter missing")
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := testClient("", srv.URL).Reverse(context.Background(), 30.2672, -97.7431)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Reverse() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Reverse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Reverse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverseServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testClient("", srv.URL).Reverse(context.Background(), 1, 2); err == nil {
		t.Error("Reverse() error = nil, want error on 503")
	}
}
