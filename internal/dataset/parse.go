// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/wheretodine/internal/geo"
)

// ParseHotspots decodes a hotspot FeatureCollection. Every feature must be a
// Polygon or MultiPolygon. weightProperty names the optional display weight;
// seen reports whether any feature carried it.
func ParseHotspots(path string, data []byte, weightProperty string) (hotspots []Hotspot, seen bool, err error) {
	fc, err := geo.DecodeFeatureCollection(data)
	if err != nil {
		return nil, false, &DataError{Path: path, Feature: -1, Err: err}
	}

	hotspots = make([]Hotspot, 0, len(fc.Features))
	for i, f := range fc.Features {
		area, err := geo.NewArea(f.Geometry)
		if err != nil {
			return nil, false, &DataError{Path: path, Feature: i, Err: fmt.Errorf("%w: %w", ErrGeometry, err)}
		}
		w, ok, err := numericProperty(f.Properties, weightProperty)
		if err != nil {
			return nil, false, &DataError{Path: path, Feature: i, Err: fmt.Errorf("%s: %w", weightProperty, err)}
		}
		if _, present := f.Properties[weightProperty]; present {
			seen = true
		}
		hotspots = append(hotspots, Hotspot{
			ID:         geo.FeatureID(f),
			Area:       area,
			Properties: f.Properties,
			rawID:      f.ID,
			weight:     w,
			hasWeight:  ok,
		})
	}
	return hotspots, seen, nil
}

// ParseRestaurants decodes a restaurant FeatureCollection. Every feature must
// be a Point. A null or missing score gives NotInHotspot; seen reports
// whether any feature carried the score attribute at all.
func ParseRestaurants(path string, data []byte, scoreProperty string) (restaurants []Restaurant, seen bool, err error) {
	fc, err := geo.DecodeFeatureCollection(data)
	if err != nil {
		return nil, false, &DataError{Path: path, Feature: -1, Err: err}
	}

	restaurants = make([]Restaurant, 0, len(fc.Features))
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, false, &DataError{Path: path, Feature: i, Err: fmt.Errorf("%w: want Point, got %s", ErrGeometry, geometryType(f.Geometry))}
		}
		v, present, err := numericProperty(f.Properties, scoreProperty)
		if err != nil {
			return nil, false, &DataError{Path: path, Feature: i, Err: fmt.Errorf("%s: %w", scoreProperty, err)}
		}
		if _, ok := f.Properties[scoreProperty]; ok {
			seen = true
		}
		score := NotInHotspot()
		if present {
			score = ScoreOf(v)
		}
		restaurants = append(restaurants, Restaurant{
			ID:         restaurantID(f, i),
			Position:   p,
			Score:      score,
			Properties: f.Properties,
			rawID:      f.ID,
		})
	}
	return restaurants, seen, nil
}

// numericProperty returns (0, false, nil) for a missing or null attribute.
func numericProperty(props geojson.Properties, key string) (float64, bool, error) {
	raw, ok := props[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		return 0, false, fmt.Errorf("%w: %v (%T)", ErrInvalidScore, raw, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidScore, v)
	}
	return v, true, nil
}

// restaurantID prefers the feature id, then an "id" attribute, then the
// feature's position in the file.
func restaurantID(f *geojson.Feature, i int) string {
	if id := geo.FeatureID(f); id != "" {
		return id
	}
	switch id := f.Properties["id"].(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return strconv.Itoa(i)
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}
