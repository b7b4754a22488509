// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package reachability fetches travel-time polygons (isochrones) from a
// Mapbox-compatible Isochrone API.
//
// One Fetch issues at most one GET request:
//
//	GET {base}/{prefix}/{driving|walking}/{lon},{lat}?contours_minutes=15&polygons=true&access_token=...
//
// and converts the first returned feature into a *geo.Area. Failures are
// reported as *Error values whose Kind tells callers whether the request was
// invalid, the service could not be reached, the service answered with an
// error status, or the answer could not be understood. Nothing is retried.
//
// An optional gobreaker circuit breaker stops calling an upstream that keeps
// failing; rejected calls surface as KindUpstreamUnavailable.
package reachability
