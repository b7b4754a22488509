// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package geo is the single boundary between GeoJSON and the internal
// geometry types.
//
// Both the dataset loader and the isochrone client decode through
// DecodeFeatureCollection and build regions with NewArea, so there is one
// place that knows about coordinate order, reference systems and polygon
// containment. Geometry is represented with github.com/paulmach/orb, where a
// point is [lon, lat].
package geo
