// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package recommend ranks the restaurants reachable inside an area.
//
// The pipeline has three pure stages, each producing a new slice:
//
//  1. FilterReachable keeps restaurants touching or inside the area.
//  2. FilterInHotspot drops restaurants whose score is NotInHotspot.
//  3. RankByScore orders the rest by score, highest first. The sort is
//     stable, so equal scores keep their input order.
//
// The input slice is never reordered or modified, which lets callers pass
// the shared dataset directly. An empty result is a valid answer, whether
// nothing was reachable or nothing reachable was in a hotspot.
package recommend
