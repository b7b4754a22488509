// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package dataset holds the hotspot polygons and scored restaurants.
//
// Both collections are read from GeoJSON once at startup by Load and are
// never modified afterwards; a *Store is safe for concurrent use without
// locking. Slices returned by its accessors are shared and must be treated
// as read-only. Anything a request derives from them (filtering, sorting)
// has to go into a new slice.
//
// A restaurant's score is a Score value rather than a nullable number: a
// restaurant outside every hotspot carries NotInHotspot, which is distinct
// from a score of zero.
package dataset
