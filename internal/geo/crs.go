// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

// ErrUnsupportedCRS is returned for a legacy "crs" member naming a
// reference system that cannot be converted to WGS84.
var ErrUnsupportedCRS = errors.New("unsupported coordinate reference system")

type crsKind int

const (
	crsWGS84 crsKind = iota
	crsWebMercator
)

// NormalizeCRS converts a collection to WGS84 longitude/latitude in place.
//
// RFC 7946 documents carry no "crs" member and are already WGS84. Older
// GeoJSON written by GIS tools may declare one; EPSG:4326 and CRS84 are
// accepted as-is and EPSG:3857 (and its 900913 alias) is unprojected.
// The member is removed afterwards so re-encoded output is RFC 7946.
func NormalizeCRS(fc *geojson.FeatureCollection) error {
	raw, ok := fc.ExtraMembers["crs"]
	if !ok {
		return nil
	}
	name, err := crsName(raw)
	if err != nil {
		return err
	}
	kind, err := classifyCRS(name)
	if err != nil {
		return err
	}
	if kind == crsWebMercator {
		for _, f := range fc.Features {
			if f.Geometry != nil {
				f.Geometry = project.Geometry(f.Geometry, project.Mercator.ToWGS84)
			}
		}
	}
	delete(fc.ExtraMembers, "crs")
	return nil
}

// crsName extracts properties.name from {"type":"name","properties":{"name":...}}.
func crsName(raw interface{}) (string, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: crs member is not an object", ErrUnsupportedCRS)
	}
	props, ok := m["properties"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: crs member has no properties", ErrUnsupportedCRS)
	}
	name, ok := props["name"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: crs member has no name", ErrUnsupportedCRS)
	}
	return name, nil
}

func classifyCRS(name string) (crsKind, error) {
	n := strings.ToUpper(name)
	switch {
	case strings.HasSuffix(n, "CRS84"), epsgCode(n) == "4326":
		return crsWGS84, nil
	case epsgCode(n) == "3857", epsgCode(n) == "900913", epsgCode(n) == "3785":
		return crsWebMercator, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCRS, name)
	}
}

// epsgCode handles "EPSG:3857", "urn:ogc:def:crs:EPSG::3857" and
// "urn:ogc:def:crs:EPSG:6.6:3857".
func epsgCode(upper string) string {
	i := strings.LastIndex(upper, "EPSG")
	if i < 0 {
		return ""
	}
	rest := upper[i+len("EPSG"):]
	if j := strings.LastIndex(rest, ":"); j >= 0 {
		return rest[j+1:]
	}
	return ""
}
