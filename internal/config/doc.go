// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package config loads service configuration with koanf.
//
// Sources are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/wheretodine/config.yaml)
//  3. A .env file in the working directory, loaded into the process
//     environment without overriding variables that are already set
//  4. Environment variables, mapped explicitly in envTransformFunc
//
// The only setting without a usable default is the isochrone access token
// (MAPBOX_ACCESS_TOKEN); Load fails when it is empty.
//
// Example config.yaml:
//
//	server:
//	  port: 8000
//	data:
//	  hotspots_path: data/final_hotspot_polygons_weighted.geojson
//	  restaurants_path: data/restaurants_with_hotspot_scores.geojson
//	reachability:
//	  timeout: 10s
//	  circuit_breaker:
//	    enabled: true
package config
