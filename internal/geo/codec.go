// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package geo

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"
)

// ErrNotFeatureCollection is returned when a document is not a GeoJSON
// FeatureCollection.
var ErrNotFeatureCollection = errors.New("not a GeoJSON FeatureCollection")

// goccyCodec lets orb's GeoJSON types encode and decode with goccy/go-json.
type goccyCodec struct{}

func (goccyCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (goccyCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

//nolint:gochecknoinits // orb exposes its codec hooks only as package variables
func init() {
	geojson.CustomJSONMarshaler = goccyCodec{}
	geojson.CustomJSONUnmarshaler = goccyCodec{}
}

// DecodeFeatureCollection parses a FeatureCollection and normalises its
// coordinates to WGS84 longitude/latitude (see NormalizeCRS).
func DecodeFeatureCollection(data []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFeatureCollection, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: type is %q", ErrNotFeatureCollection, fc.Type)
	}
	if err := NormalizeCRS(fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// NewFeatureCollection builds a collection from already-constructed features.
// The result always has a non-nil feature slice so it encodes as [] rather
// than null.
func NewFeatureCollection(features []*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if features != nil {
		fc.Features = features
	}
	return fc
}

// FeatureID returns the feature's "id" member as a string, or "" if absent.
// Numeric IDs decode as float64 and are printed without a trailing ".0".
func FeatureID(f *geojson.Feature) string {
	switch id := f.ID.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return fmt.Sprintf("%g", id)
	default:
		return fmt.Sprint(id)
	}
}
