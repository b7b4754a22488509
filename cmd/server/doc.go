// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

/*
Package main is the entry point for the Where to Dine server.

The server loads two GeoJSON datasets at startup, precomputed dining
hotspot polygons and restaurant points carrying a weighted hotspot score,
and answers "which good restaurants can I reach from here in N minutes?"
by asking a Mapbox-compatible isochrone API for the reachable area.

# Application Architecture

	RootSupervisor ("wheretodine")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: koanf v2 with defaults, optional YAML, .env and environment
 2. Logging: zerolog with JSON or console output
 3. Datasets: hotspots and restaurants, any error is fatal
 4. Isochrone client: HTTP client behind a circuit breaker
 5. Query service, HTTP handlers and router
 6. Supervisor tree: suture v4 hosting the HTTP server

# Configuration

	MAPBOX_ACCESS_TOKEN=pk...     # required
	HTTP_PORT=8000
	LOG_LEVEL=info                # trace, debug, info, warn, error
	LOG_FORMAT=json               # json or console
	HOTSPOTS_PATH=data/final_hotspot_polygons_weighted.geojson
	RESTAURANTS_PATH=data/restaurants_with_hotspot_scores.geojson
	DEFAULT_MINUTES=15
	CORS_ORIGINS=*

A .env file in the working directory is read first; variables already set
in the environment take precedence.

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT.
*/
package main
