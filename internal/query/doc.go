// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package query implements the two read operations exposed over HTTP:
// listing hotspots and recommending reachable restaurants.
//
// A Service holds no mutable state. The datasets behind StoreReader are
// loaded once at startup and shared read-only, so concurrent calls need no
// locking.
package query
