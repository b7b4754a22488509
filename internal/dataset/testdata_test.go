// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const hotspotsJSON = `{"type":"FeatureCollection","features":[
	{"type":"Feature","id":0,"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]},"properties":{"weight":0.9,"name":"Downtown"}},
	{"type":"Feature","id":1,"geometry":{"type":"MultiPolygon","coordinates":[[[[5,5],[6,5],[6,6],[5,6],[5,5]]]]},"properties":{"weight":0.4,"name":"Harbour"}},
	{"type":"Feature","id":2,"geometry":{"type":"Polygon","coordinates":[[[10,10],[11,10],[11,11],[10,11],[10,10]]]},"properties":{"weight":0.7,"name":"Old Town"}}
]}`

const restaurantsJSON = `{"type":"FeatureCollection","features":[
	{"type":"Feature","id":"r1","geometry":{"type":"Point","coordinates":[0.5,0.5]},"properties":{"name":"A","weighted_score":9}},
	{"type":"Feature","id":"r2","geometry":{"type":"Point","coordinates":[1.5,1.5]},"properties":{"name":"B","weighted_score":0}},
	{"type":"Feature","id":"r3","geometry":{"type":"Point","coordinates":[1.0,1.0]},"properties":{"name":"C","weighted_score":null}},
	{"type":"Feature","geometry":{"type":"Point","coordinates":[8,8]},"properties":{"name":"D","id":"from-props"}},
	{"type":"Feature","geometry":{"type":"Point","coordinates":[5.5,5.5]},"properties":{"name":"E","weighted_score":3.25}}
]}`

// writeFixture writes content to name inside a fresh temp dir.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func fixtureOptions(t *testing.T, hotspots, restaurants string) Options {
	t.Helper()
	return Options{
		HotspotsPath:    writeFixture(t, "hotspots.geojson", hotspots),
		RestaurantsPath: writeFixture(t, "restaurants.geojson", restaurants),
		ScoreProperty:   "weighted_score",
		WeightProperty:  "weight",
		CellSize:        1,
	}
}
