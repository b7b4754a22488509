// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry with promauto, grouped
// by concern: HTTP API, isochrone upstream and its circuit breaker, the
// loaded datasets, and recommendation results.
package metrics
