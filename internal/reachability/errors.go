// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package reachability

import (
	"errors"
	"fmt"
)

// Kind classifies a Fetch failure.
type Kind int

const (
	// KindInvalidArgument means the request was rejected before any network call.
	KindInvalidArgument Kind = iota + 1
	// KindUpstreamUnavailable covers connection failures, timeouts and an open breaker.
	KindUpstreamUnavailable
	// KindUpstreamError means the service answered with a non-2xx status.
	KindUpstreamError
	// KindUpstreamBadResponse means a 2xx answer without a usable polygon.
	KindUpstreamBadResponse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstreamError:
		return "upstream_error"
	case KindUpstreamBadResponse:
		return "upstream_bad_response"
	default:
		return "unknown"
	}
}

// Error is returned by ParseMode and Client.Fetch.
type Error struct {
	Kind    Kind
	Message string

	// StatusCode and Body are set for KindUpstreamError. Body is truncated.
	StatusCode int
	Body       string

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Message
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

func invalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
