// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// gridIndex buckets restaurant ordinals into square cells of cellSize
// degrees. It is built once and only read afterwards.
type gridIndex struct {
	cellSize float64
	cells    map[cellKey][]int
}

type cellKey struct {
	X, Y int
}

func newGridIndex(points []orb.Point, cellSize float64) *gridIndex {
	g := &gridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
	for i, p := range points {
		k := g.key(p)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *gridIndex) key(p orb.Point) cellKey {
	return cellKey{
		X: int(math.Floor(p.Lon() / g.cellSize)),
		Y: int(math.Floor(p.Lat() / g.cellSize)),
	}
}

// query returns, in ascending order, the ordinals of every point in a cell
// overlapping b. The result is a superset of the points inside b.
func (g *gridIndex) query(b orb.Bound) []int {
	lo, hi := g.key(b.Min), g.key(b.Max)
	span := (float64(hi.X-lo.X) + 1) * (float64(hi.Y-lo.Y) + 1)

	var out []int
	if span > float64(len(g.cells)) {
		// Bound covers more cells than are occupied: walk the occupied ones.
		for k, ids := range g.cells {
			if k.X >= lo.X && k.X <= hi.X && k.Y >= lo.Y && k.Y <= hi.Y {
				out = append(out, ids...)
			}
		}
	} else {
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				out = append(out, g.cells[cellKey{X: x, Y: y}]...)
			}
		}
	}
	slices.Sort(out)
	return out
}
