// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. Status is "success" or "error"; Error is populated only for
// error responses.
//
//	{
//	  "status": "success",
//	  "data": {"events": [...], "total": 42},
//	  "metadata": {"timestamp": "2026-08-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable error code alongside the
// human-readable message. Codes are stable; messages are not.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Stable API error codes. INVALID_DATE_FORMAT and RATE_LIMITED get
// distinct codes so the UI can show actionable messaging for them.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodeRateLimited       = "RATE_LIMITED"
	CodeUnauthorized      = "UPSTREAM_UNAUTHORIZED"
	CodeUpstreamError     = "UPSTREAM_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)
