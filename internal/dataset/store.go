// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"context"
	"os"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/metrics"
)

// DefaultCellSize is roughly 1 km at mid latitudes.
const DefaultCellSize = 0.01

// Options locates and describes the input files.
type Options struct {
	HotspotsPath    string
	RestaurantsPath string
	ScoreProperty   string
	WeightProperty  string
	CellSize        float64
}

// Stats summarises a loaded store.
type Stats struct {
	Hotspots          int `json:"hotspots"`
	Restaurants       int `json:"restaurants"`
	ScoredRestaurants int `json:"scored_restaurants"`
}

// Store is the immutable in-memory dataset.
type Store struct {
	hotspots    []Hotspot
	restaurants []Restaurant
	index       *gridIndex
	stats       Stats
}

// New builds a store from already-parsed collections. The slices are owned
// by the store afterwards.
func New(hotspots []Hotspot, restaurants []Restaurant, cellSize float64) *Store {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	points := make([]orb.Point, len(restaurants))
	scored := 0
	for i, r := range restaurants {
		points[i] = r.Position
		if r.Score.InHotspot() {
			scored++
		}
	}
	return &Store{
		hotspots:    hotspots,
		restaurants: restaurants,
		index:       newGridIndex(points, cellSize),
		stats: Stats{
			Hotspots:          len(hotspots),
			Restaurants:       len(restaurants),
			ScoredRestaurants: scored,
		},
	}
}

// Load reads both GeoJSON files. Every returned error matches
// ErrStartupData. A restaurant file where no feature carries the score
// attribute is accepted with a warning; nothing from it can be recommended.
func Load(ctx context.Context, opts Options) (*Store, error) {
	log := logging.WithComponent("dataset")
	start := time.Now()

	data, err := readFile(opts.HotspotsPath)
	if err != nil {
		return nil, err
	}
	hotspots, weightSeen, err := ParseHotspots(opts.HotspotsPath, data, opts.WeightProperty)
	if err != nil {
		return nil, err
	}
	if !weightSeen && len(hotspots) > 0 {
		log.Warn().
			Str("path", opts.HotspotsPath).
			Str("attribute", opts.WeightProperty).
			Msg("Hotspot weight attribute not found in any feature")
	}

	if err := ctx.Err(); err != nil {
		return nil, &DataError{Path: opts.RestaurantsPath, Feature: -1, Err: err}
	}

	data, err = readFile(opts.RestaurantsPath)
	if err != nil {
		return nil, err
	}
	restaurants, scoreSeen, err := ParseRestaurants(opts.RestaurantsPath, data, opts.ScoreProperty)
	if err != nil {
		return nil, err
	}
	if !scoreSeen {
		log.Warn().
			Str("path", opts.RestaurantsPath).
			Str("attribute", opts.ScoreProperty).
			Msg("Score attribute missing from restaurant data; recommendations will always be empty")
	}

	s := New(hotspots, restaurants, opts.CellSize)
	metrics.RecordDatasetLoaded(s.stats.Hotspots, s.stats.Restaurants, s.stats.ScoredRestaurants)

	log.Info().
		Int("hotspots", s.stats.Hotspots).
		Int("restaurants", s.stats.Restaurants).
		Int("scored", s.stats.ScoredRestaurants).
		Dur("took", time.Since(start)).
		Msg("Datasets loaded")
	return s, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataError{Path: path, Feature: -1, Err: err}
	}
	return data, nil
}

// Hotspots returns every hotspot in file order. Read-only.
func (s *Store) Hotspots() []Hotspot { return s.hotspots }

// Restaurants returns every restaurant in file order. Read-only.
func (s *Store) Restaurants() []Restaurant { return s.restaurants }

// Stats returns collection sizes.
func (s *Store) Stats() Stats { return s.stats }

// Candidates returns, in file order, a new slice holding every restaurant
// that may lie inside b. Restaurants outside b can appear; restaurants inside
// b never go missing.
func (s *Store) Candidates(b orb.Bound) []Restaurant {
	ids := s.index.query(b)
	out := make([]Restaurant, len(ids))
	for i, id := range ids {
		out[i] = s.restaurants[id]
	}
	return out
}
