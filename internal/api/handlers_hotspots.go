// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"net/http"

	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/wheretodine/internal/geo"
)

// Hotspots returns every hotspot polygon with its original properties, in
// file order.
func (h *Handler) Hotspots(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	hotspots, err := h.svc.ListHotspots(r.Context())
	if err != nil {
		rw.ServiceError(err)
		return
	}

	features := make([]*geojson.Feature, len(hotspots))
	for i := range hotspots {
		features[i] = hotspots[i].Feature()
	}
	rw.FeatureCollection(geo.NewFeatureCollection(features))
}
