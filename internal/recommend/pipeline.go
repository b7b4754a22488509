// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package recommend

import (
	"cmp"
	"slices"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/geo"
)

// Recommend runs all three stages. The result is never nil.
func Recommend(area *geo.Area, restaurants []dataset.Restaurant) []dataset.Restaurant {
	ranked, _ := run(area, restaurants)
	return ranked
}

// run also returns the number of reachable restaurants for instrumentation.
func run(area *geo.Area, restaurants []dataset.Restaurant) (ranked []dataset.Restaurant, reachable int) {
	inArea := FilterReachable(area, restaurants)
	if len(inArea) == 0 {
		return []dataset.Restaurant{}, 0
	}
	scored := FilterInHotspot(inArea)
	if len(scored) == 0 {
		return []dataset.Restaurant{}, len(inArea)
	}
	return RankByScore(scored), len(inArea)
}

// FilterReachable returns the restaurants whose position is on or inside area.
func FilterReachable(area *geo.Area, restaurants []dataset.Restaurant) []dataset.Restaurant {
	out := make([]dataset.Restaurant, 0)
	if area == nil {
		return out
	}
	for _, r := range restaurants {
		if area.Contains(r.Position) {
			out = append(out, r)
		}
	}
	return out
}

// FilterInHotspot returns the restaurants that carry a score.
func FilterInHotspot(restaurants []dataset.Restaurant) []dataset.Restaurant {
	out := make([]dataset.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if _, ok := r.Score.Value(); ok {
			out = append(out, r)
		}
	}
	return out
}

// RankByScore returns a copy sorted by score, highest first, keeping the
// input order for equal scores. NotInHotspot sorts last.
func RankByScore(restaurants []dataset.Restaurant) []dataset.Restaurant {
	out := make([]dataset.Restaurant, len(restaurants))
	copy(out, restaurants)
	slices.SortStableFunc(out, func(a, b dataset.Restaurant) int {
		av, aok := a.Score.Value()
		bv, bok := b.Score.Value()
		switch {
		case aok && bok:
			return cmp.Compare(bv, av)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return out
}
