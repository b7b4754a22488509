// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

/*
Package api exposes the query service over HTTP using the chi router.

Routes:

	GET /                 service status
	GET /hotspots         hotspot polygons as a GeoJSON FeatureCollection
	GET /recommend        ranked reachable restaurants as a FeatureCollection
	GET /api/hotspots     alias of /hotspots
	GET /api/recommend    alias of /recommend
	GET /health/live      liveness probe
	GET /health/ready     readiness probe (datasets loaded)
	GET /metrics          Prometheus exposition

Successful data responses are bare GeoJSON so map clients can consume them
directly. Every error, including 404 and 429, uses the JSON envelope written
by ResponseWriter:

	{"success":false,"error":{"code":"UPSTREAM_ERROR","message":"...","details":{...},"request_id":"..."},"metadata":{"timestamp":"..."}}

Error mapping for /recommend:

	missing or non-numeric lat/lon/minutes 400 VALIDATION_ERROR or BAD_REQUEST
	invalid mode                           400 INVALID_ARGUMENT
	isochrone service unreachable          503 UPSTREAM_UNAVAILABLE
	isochrone service returned non-2xx     502 UPSTREAM_ERROR
	isochrone response unusable            502 UPSTREAM_BAD_RESPONSE
	datasets not loaded                    500 DATA_UNAVAILABLE
*/
package api
