// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package provider

import (
	"context"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/logging"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/metrics"
)

// BreakerClient wraps a Source with a circuit breaker so sustained
// provider outages fail fast instead of holding every request for the
// full client timeout.
//
// An open breaker surfaces as KindUnreachable, which the recommendation
// engine already treats as zero results for the failing tier. There is no
// retry behind the breaker.
type BreakerClient struct {
	source Source
	cb     *gobreaker.CircuitBreaker[interface{}]
}

// NewBreakerClient wraps source with a circuit breaker.
// The breaker opens at a 60% failure rate over at least 10 requests.
func NewBreakerClient(source Source) *BreakerClient {
	const cbName = "event-provider"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
		},
	})

	return &BreakerClient{source: source, cb: cb}
}

// FetchEvents implements Source.
func (b *BreakerClient) FetchEvents(ctx context.Context, params SearchParams) (*EventPage, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.source.FetchEvents(ctx, params)
	})
	if err != nil {
		return nil, b.wrapBreakerErr(err)
	}
	return result.(*EventPage), nil
}

// FetchEventByID implements Source.
func (b *BreakerClient) FetchEventByID(ctx context.Context, id string) (*RawEvent, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.source.FetchEventByID(ctx, id)
	})
	if err != nil {
		return nil, b.wrapBreakerErr(err)
	}
	return result.(*RawEvent), nil
}

// FetchCategories implements Source.
func (b *BreakerClient) FetchCategories(ctx context.Context) ([]Segment, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.source.FetchCategories(ctx)
	})
	if err != nil {
		return nil, b.wrapBreakerErr(err)
	}
	return result.([]Segment), nil
}

// wrapBreakerErr converts breaker-internal errors into the adapter's
// taxonomy; provider errors pass through untouched.
func (b *BreakerClient) wrapBreakerErr(err error) error {
	if KindOf(err) != KindUnknown {
		return err
	}
	return &Error{
		Kind:    KindUnreachable,
		Message: "provider unavailable: " + err.Error(),
	}
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
