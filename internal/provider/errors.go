// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates adapter failures as structured data. Callers
// switch on the kind, never on message substrings.
type ErrorKind int

const (
	// KindUnknown is the zero value; not produced by the client.
	KindUnknown ErrorKind = iota

	// KindInvalidDateFormat means a caller-supplied datetime parameter
	// failed format validation. Detected before any network I/O.
	KindInvalidDateFormat

	// KindUnauthorized means the provider rejected the API credential.
	KindUnauthorized

	// KindRateLimited means the provider returned HTTP 429.
	KindRateLimited

	// KindUpstreamFault means the provider returned a structured fault
	// body; Message carries the extracted fault text.
	KindUpstreamFault

	// KindUnreachable means no response was received at all.
	KindUnreachable

	// KindRequestSetup means the outbound request could not be built.
	KindRequestSetup
)

// String returns the kind's name for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDateFormat:
		return "invalid_date_format"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstreamFault:
		return "upstream_fault"
	case KindUnreachable:
		return "unreachable"
	case KindRequestSetup:
		return "request_setup"
	default:
		return "unknown"
	}
}

// Error is the single error type raised by the adapter.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP status when one was received, else 0

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a provider Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

// KindOf returns the ErrorKind of err, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

func errInvalidDateFormat(param, value string) *Error {
	return &Error{
		Kind: KindInvalidDateFormat,
		Message: fmt.Sprintf(
			"invalid %s %q: expected format YYYY-MM-DDTHH:mm:ssZ (e.g. %s)",
			param, value, DateTimeExample),
	}
}

func errUnauthorized() *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Message: "provider rejected the API key; check the configured credential",
		Status:  401,
	}
}

func errRateLimited() *Error {
	return &Error{
		Kind:    KindRateLimited,
		Message: "provider rate limit exceeded; wait a moment before retrying",
		Status:  429,
	}
}

func errUpstreamFault(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("provider request failed with status %d", status)
	}
	return &Error{Kind: KindUpstreamFault, Message: message, Status: status}
}

func errUnreachable(cause error) *Error {
	return &Error{
		Kind:    KindUnreachable,
		Message: "no response from provider: " + cause.Error(),
		cause:   cause,
	}
}

func errRequestSetup(cause error) *Error {
	return &Error{
		Kind:    KindRequestSetup,
		Message: "building provider request: " + cause.Error(),
		cause:   cause,
	}
}
