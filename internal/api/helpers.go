// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/validation"
)

// sanitizeLogValue replaces control characters so attacker-supplied
// strings cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with the standard envelope.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondData sends a success envelope around data.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    &models.APIError{Code: code, Message: message},
	})
}

// respondProviderError maps the adapter's error taxonomy onto HTTP
// statuses and stable error codes. Rate limiting and date-format failures
// get distinct codes so the UI can special-case them; everything else
// collapses to a generic upstream error.
func respondProviderError(w http.ResponseWriter, err error) {
	switch provider.KindOf(err) {
	case provider.KindInvalidDateFormat:
		respondError(w, http.StatusBadRequest, models.CodeInvalidDateFormat, err.Error(), nil)
	case provider.KindRateLimited:
		respondError(w, http.StatusTooManyRequests, models.CodeRateLimited, err.Error(), nil)
	case provider.KindUnauthorized:
		respondError(w, http.StatusBadGateway, models.CodeUnauthorized, err.Error(), nil)
	default:
		respondError(w, http.StatusBadGateway, models.CodeUpstreamError,
			"event provider request failed, try again", err)
	}
}

// validateRequest validates a struct, returning the API error to send on
// failure.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}

// getIntParam extracts an integer query parameter with a default.
func getIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// getBoolParam extracts a boolean query parameter with a default.
func getBoolParam(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// getFloatParam extracts a float query parameter with a default.
func getFloatParam(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// decodeBody decodes a JSON request body into out.
func decodeBody(r *http.Request, out interface{}) error {
	defer r.Body.Close() //nolint:errcheck // read-only body
	return json.NewDecoder(r.Body).Decode(out)
}
