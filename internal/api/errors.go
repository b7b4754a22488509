// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/query"
	"github.com/tomtom215/wheretodine/internal/reachability"
)

// upstreamDetails is attached to UPSTREAM_ERROR responses.
type upstreamDetails struct {
	UpstreamStatus int    `json:"upstream_status"`
	UpstreamBody   string `json:"upstream_body,omitempty"`
}

// ServiceError maps an error from the query service onto a response.
func (rw *ResponseWriter) ServiceError(err error) {
	status, code, message, details := classify(err)

	event := logging.Ctx(rw.r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(rw.r.Context()).Error()
	}
	event.
		Str("code", code).
		Int("status", status).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("Request failed")

	rw.ErrorWithDetails(status, code, message, details)
}

func classify(err error) (status int, code, message string, details interface{}) {
	if errors.Is(err, query.ErrDataUnavailable) {
		return http.StatusInternalServerError, ErrCodeDataUnavailable, "Restaurant data is not available", nil
	}

	var rerr *reachability.Error
	if !errors.As(err, &rerr) {
		return http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", nil
	}

	switch rerr.Kind {
	case reachability.KindInvalidArgument:
		return http.StatusBadRequest, ErrCodeInvalidArgument, rerr.Message, nil
	case reachability.KindUpstreamUnavailable:
		return http.StatusServiceUnavailable, ErrCodeUpstreamUnavailable, "Isochrone service is unavailable", nil
	case reachability.KindUpstreamError:
		return http.StatusBadGateway, ErrCodeUpstreamError, "Isochrone service returned an error",
			upstreamDetails{UpstreamStatus: rerr.StatusCode, UpstreamBody: rerr.Body}
	case reachability.KindUpstreamBadResponse:
		return http.StatusBadGateway, ErrCodeUpstreamBadResponse, "Isochrone service returned an unusable response", nil
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", nil
	}
}
