// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package validation

import (
	"strings"
	"testing"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
)

type searchRequest struct {
	StartDateTime string `validate:"omitempty,providerdatetime"`
	Date          string `validate:"omitempty,datebucket"`
	Price         string `validate:"omitempty,pricebucket"`
	Size          int    `validate:"min=0,max=200"`
}

func TestValidateStructCustomTags(t *testing.T) {
	tests := []struct {
		name    string
		req     searchRequest
		wantErr bool
	}{
		{"empty request", searchRequest{}, false},
		{"valid datetime", searchRequest{StartDateTime: "2026-09-01T00:00:00Z"}, false},
		{"datetime with offset", searchRequest{StartDateTime: "2026-09-01T00:00:00+02:00"}, true},
		{"datetime without seconds", searchRequest{StartDateTime: "2026-09-01T00:00Z"}, true},
		{"valid bucket", searchRequest{Date: models.DateBucketThisWeek}, false},
		{"unknown bucket", searchRequest{Date: "next-year"}, true},
		{"valid price", searchRequest{Price: models.PriceBucketFree}, false},
		{"unknown price", searchRequest{Price: "cheap"}, true},
		{"size in range", searchRequest{Size: 200}, false},
		{"size too big", searchRequest{Size: 201}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToAPIErrorDateTimeCode(t *testing.T) {
	err := ValidateStruct(searchRequest{StartDateTime: "09/01/2026"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != models.CodeInvalidDateFormat {
		t.Errorf("Code = %q, want %q", apiErr.Code, models.CodeInvalidDateFormat)
	}
	if !strings.Contains(apiErr.Message, provider.DateTimeExample) {
		t.Errorf("Message %q should include the format example", apiErr.Message)
	}
}

func TestToAPIErrorMultipleFailures(t *testing.T) {
	err := ValidateStruct(searchRequest{Date: "someday", Price: "cheap"})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Failures) != 2 {
		t.Fatalf("got %d failures, want 2", len(err.Failures))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != models.CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, models.CodeValidationError)
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("Message %q should join both failures", apiErr.Message)
	}
}
