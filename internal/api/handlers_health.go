// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"net/http"
	"time"
)

// Root reports the service name, version and dataset sizes.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"message": ServiceName,
		"version": h.version,
		"dataset": h.stats,
	})
}

// HealthLive returns 200 while the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 once the datasets are loaded and 503 otherwise.
// The isochrone service is not probed.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.ListHotspots(r.Context())
	ready := err == nil

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).Status(statusCode, ready, map[string]interface{}{
		"datasets_loaded": ready,
		"uptime":          time.Since(h.startTime).Seconds(),
	})
}
