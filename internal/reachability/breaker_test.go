// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package reachability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	up := newUpstream(t, respond(http.StatusServiceUnavailable, `{"message":"down"}`))
	c := newTestClient(t, up.URL, func(o *Options) {
		o.Breaker = BreakerSettings{
			Enabled:      true,
			MaxRequests:  1,
			Timeout:      time.Minute,
			MinRequests:  2,
			FailureRatio: 0.5,
		}
	})

	for i := 0; i < 2; i++ {
		if _, err := c.Fetch(context.Background(), origin, Driving, 15); !IsKind(err, KindUpstreamError) {
			t.Fatalf("call %d: error = %v, want KindUpstreamError", i, err)
		}
	}

	_, err := c.Fetch(context.Background(), origin, Driving, 15)
	if !IsKind(err, KindUpstreamUnavailable) {
		t.Fatalf("third call error = %v, want KindUpstreamUnavailable", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("third call error = %v, want ErrOpenState in chain", err)
	}
	if n := up.calls.Load(); n != 2 {
		t.Errorf("upstream calls = %d, want 2 (open breaker must not call out)", n)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	up := newUpstream(t, respond(http.StatusUnprocessableEntity, `{"message":"bad coordinates"}`))
	c := newTestClient(t, up.URL, func(o *Options) {
		o.Breaker = BreakerSettings{
			Enabled:      true,
			MaxRequests:  1,
			Timeout:      time.Minute,
			MinRequests:  1,
			FailureRatio: 0.1,
		}
	})

	for i := 0; i < 5; i++ {
		if _, err := c.Fetch(context.Background(), origin, Walking, 15); !IsKind(err, KindUpstreamError) {
			t.Fatalf("call %d: error = %v, want KindUpstreamError", i, err)
		}
	}
	if n := up.calls.Load(); n != 5 {
		t.Errorf("upstream calls = %d, want 5", n)
	}
}

func TestCountsAsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"cancelled", &Error{Kind: KindUpstreamUnavailable, Err: context.Canceled}, true},
		{"unreachable", &Error{Kind: KindUpstreamUnavailable, Err: errors.New("connection refused")}, false},
		{"bad response", &Error{Kind: KindUpstreamBadResponse}, false},
		{"500", &Error{Kind: KindUpstreamError, StatusCode: 500}, false},
		{"429", &Error{Kind: KindUpstreamError, StatusCode: 429}, false},
		{"404", &Error{Kind: KindUpstreamError, StatusCode: 404}, true},
		{"invalid argument", &Error{Kind: KindInvalidArgument}, true},
		{"foreign error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := countsAsSuccess(tt.err); got != tt.want {
				t.Errorf("countsAsSuccess(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		f     float64
		s     string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
	}
	for _, tt := range tests {
		tt := tt
		if got := stateToFloat(tt.state); got != tt.f {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.f)
		}
		if got := stateToString(tt.state); got != tt.s {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.s)
		}
	}
}
