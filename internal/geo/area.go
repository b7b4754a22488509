// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrNotPolygonal is returned when a geometry is not a Polygon or
// MultiPolygon, or has no usable exterior ring.
var ErrNotPolygonal = errors.New("geometry is not a polygon")

// Coordinate is a WGS84 position in the order users type it.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Point converts to orb's [lon, lat] order.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Area is an immutable polygonal region.
type Area struct {
	geom  orb.Geometry
	polys orb.MultiPolygon
	bound orb.Bound
}

// NewArea validates g and precomputes its bound. Every polygon must have a
// closed exterior ring of at least four positions (a triangle).
func NewArea(g orb.Geometry) (*Area, error) {
	var polys orb.MultiPolygon
	switch v := g.(type) {
	case orb.Polygon:
		polys = orb.MultiPolygon{v}
	case orb.MultiPolygon:
		polys = v
	case nil:
		return nil, fmt.Errorf("%w: geometry is null", ErrNotPolygonal)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotPolygonal, g.GeoJSONType())
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: no polygons", ErrNotPolygonal)
	}
	for i, p := range polys {
		if len(p) == 0 || len(p[0]) < 4 {
			return nil, fmt.Errorf("%w: polygon %d has no valid exterior ring", ErrNotPolygonal, i)
		}
		if !p[0].Closed() {
			return nil, fmt.Errorf("%w: polygon %d exterior ring is not closed", ErrNotPolygonal, i)
		}
	}
	return &Area{geom: g, polys: polys, bound: g.Bound()}, nil
}

// Geometry returns the geometry the area was built from.
func (a *Area) Geometry() orb.Geometry { return a.geom }

// Bound returns the area's bounding box.
func (a *Area) Bound() orb.Bound { return a.bound }

// Contains reports whether p touches or lies within the area. Points on an
// exterior ring count as inside; points on a hole's ring also count as
// inside since they touch the polygon.
func (a *Area) Contains(p orb.Point) bool {
	if !a.bound.Contains(p) {
		return false
	}
	for _, poly := range a.polys {
		if polygonContains(poly, p) {
			return true
		}
	}
	return false
}

func polygonContains(poly orb.Polygon, p orb.Point) bool {
	outer := poly[0]
	if !onRing(outer, p) && !planar.RingContains(outer, p) {
		return false
	}
	for _, hole := range poly[1:] {
		if len(hole) < 4 {
			continue
		}
		if planar.RingContains(hole, p) && !onRing(hole, p) {
			return false
		}
	}
	return true
}

// onRing reports whether p lies exactly on one of the ring's edges.
func onRing(r orb.Ring, p orb.Point) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		if onSegment(r[i], r[(i+1)%n], p) {
			return true
		}
	}
	return false
}

func onSegment(a, b, p orb.Point) bool {
	cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
	if cross != 0 {
		return false
	}
	return p[0] >= min(a[0], b[0]) && p[0] <= max(a[0], b[0]) &&
		p[1] >= min(a[1], b[1]) && p[1] <= max(a[1], b[1])
}
