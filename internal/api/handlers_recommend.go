// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"net/http"

	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/wheretodine/internal/geo"
	"github.com/tomtom215/wheretodine/internal/query"
)

// recommendParams are the /recommend query parameters. Mode is checked by
// the query service so it reports INVALID_ARGUMENT. Coordinate ranges and
// minutes are left to the isochrone service.
type recommendParams struct {
	Lat     *float64 `query:"lat" validate:"required"`
	Lon     *float64 `query:"lon" validate:"required"`
	Mode    string   `query:"mode"`
	Minutes *int     `query:"minutes"`
}

// Recommend returns the in-hotspot restaurants reachable from lat/lon within
// minutes of travel by mode, highest score first.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, err := parseRecommendParams(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if apiErr := validateRequest(params); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	ranked, err := h.svc.Recommend(r.Context(), query.Request{
		Lat:     *params.Lat,
		Lon:     *params.Lon,
		Mode:    params.Mode,
		Minutes: params.Minutes,
	})
	if err != nil {
		rw.ServiceError(err)
		return
	}

	features := make([]*geojson.Feature, len(ranked))
	for i := range ranked {
		features[i] = ranked[i].Feature()
	}
	rw.FeatureCollection(geo.NewFeatureCollection(features))
}

func parseRecommendParams(r *http.Request) (*recommendParams, error) {
	q := r.URL.Query()

	lat, err := parseFloatParam(q, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := parseFloatParam(q, "lon")
	if err != nil {
		return nil, err
	}
	minutes, err := parseIntParam(q, "minutes")
	if err != nil {
		return nil, err
	}
	return &recommendParams{
		Lat:     lat,
		Lon:     lon,
		Mode:    q.Get("mode"),
		Minutes: minutes,
	}, nil
}
