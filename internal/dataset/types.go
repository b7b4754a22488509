// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/wheretodine/internal/geo"
)

// Score is either a finite weighted score or NotInHotspot.
// The zero value is NotInHotspot.
type Score struct {
	value   float64
	present bool
}

// ScoreOf returns a present score. Callers must pass a finite value.
func ScoreOf(v float64) Score {
	return Score{value: v, present: true}
}

// NotInHotspot returns the absent score.
func NotInHotspot() Score {
	return Score{}
}

// Value returns the score and true, or 0 and false for NotInHotspot.
func (s Score) Value() (float64, bool) {
	return s.value, s.present
}

// InHotspot reports whether the score is present.
func (s Score) InHotspot() bool {
	return s.present
}

func (s Score) String() string {
	if !s.present {
		return "NotInHotspot"
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}

// Hotspot is a precomputed dining area.
type Hotspot struct {
	ID   string
	Area *geo.Area

	// Properties are the feature's original attributes, weight included.
	Properties geojson.Properties

	rawID     interface{}
	weight    float64
	hasWeight bool
}

// Weight returns the display weight, if the feature carried one.
func (h Hotspot) Weight() (float64, bool) {
	return h.weight, h.hasWeight
}

// Feature converts the hotspot back to GeoJSON with its original
// attributes. The properties map is shared, not copied.
func (h Hotspot) Feature() *geojson.Feature {
	f := geojson.NewFeature(h.Area.Geometry())
	f.ID = h.rawID
	if h.Properties != nil {
		f.Properties = h.Properties
	}
	return f
}

// Restaurant is a scored point of interest.
type Restaurant struct {
	ID         string
	Position   orb.Point
	Score      Score
	Properties geojson.Properties

	rawID interface{}
}

// Feature converts the restaurant back to GeoJSON with its original
// attributes. The properties map is shared, not copied.
func (r Restaurant) Feature() *geojson.Feature {
	f := geojson.NewFeature(r.Position)
	f.ID = r.ID
	if r.rawID != nil {
		f.ID = r.rawID
	}
	if r.Properties != nil {
		f.Properties = r.Properties
	}
	return f
}
