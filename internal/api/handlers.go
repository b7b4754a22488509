// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"time"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/query"
)

// ServiceName is reported by the status endpoint.
const ServiceName = "Where to Dine API"

// HandlerOptions carries the static values reported by status endpoints.
type HandlerOptions struct {
	Version string
	Stats   dataset.Stats
}

// Handler serves the HTTP endpoints.
type Handler struct {
	svc       *query.Service
	version   string
	stats     dataset.Stats
	startTime time.Time
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc *query.Service, opts HandlerOptions) *Handler {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		svc:       svc,
		version:   version,
		stats:     opts.Stats,
		startTime: time.Now(),
	}
}
