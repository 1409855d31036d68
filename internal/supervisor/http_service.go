// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer is the subset of *http.Server the service needs, split out so
// tests can substitute a fake.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture: ListenAndServe blocks
// in its own goroutine while Serve watches the supervisor context.
type HTTPServerService struct {
	srv         HTTPServer
	drainWindow time.Duration
}

// NewHTTPServerService wraps srv as a supervised service. drainWindow bounds
// how long graceful shutdown waits for in-flight requests.
func NewHTTPServerService(srv HTTPServer, drainWindow time.Duration) *HTTPServerService {
	if drainWindow <= 0 {
		drainWindow = 10 * time.Second
	}
	return &HTTPServerService{srv: srv, drainWindow: drainWindow}
}

// Serve implements suture.Service. A canceled context triggers graceful
// shutdown; http.ErrServerClosed is the expected result of that and is not
// reported as a failure.
func (s *HTTPServerService) Serve(ctx context.Context) error {
	fail := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		fail <- err
	}()

	select {
	case err := <-fail:
		if err == nil {
			// Closed from outside this service; let the supervisor decide.
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	// ctx is already canceled, so shutdown gets its own deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), s.drainWindow)
	defer cancel()

	if err := s.srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	<-fail
	return ctx.Err()
}

func (s *HTTPServerService) String() string { return "http-server" }
