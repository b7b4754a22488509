// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/geo"
	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/reachability"
	"github.com/tomtom215/wheretodine/internal/recommend"
)

// DefaultMinutes is used when a request omits the travel time.
const DefaultMinutes = 15

// ErrDataUnavailable is returned when the datasets were never loaded.
var ErrDataUnavailable = errors.New("dataset unavailable")

// StoreReader is the read side of the dataset store.
type StoreReader interface {
	Hotspots() []dataset.Hotspot
	Candidates(b orb.Bound) []dataset.Restaurant
}

// Fetcher computes the area reachable from an origin.
type Fetcher interface {
	Fetch(ctx context.Context, origin geo.Coordinate, mode reachability.Mode, minutes int) (*geo.Area, error)
}

// Options configures a Service.
type Options struct {
	DefaultMinutes int
}

// Request is a recommendation query. Minutes is optional.
type Request struct {
	Lat     float64
	Lon     float64
	Mode    string
	Minutes *int
}

// Service answers hotspot and recommendation queries.
type Service struct {
	store          StoreReader
	fetcher        Fetcher
	engine         *recommend.Engine
	defaultMinutes int
}

// New creates a Service. A nil store makes every call fail with
// ErrDataUnavailable.
func New(store StoreReader, fetcher Fetcher, opts Options) *Service {
	minutes := opts.DefaultMinutes
	if minutes < 1 {
		minutes = DefaultMinutes
	}
	return &Service{
		store:          store,
		fetcher:        fetcher,
		engine:         recommend.NewEngine(logging.Logger()),
		defaultMinutes: minutes,
	}
}

// DefaultMinutes returns the travel time applied when a request omits it.
func (s *Service) DefaultMinutes() int {
	return s.defaultMinutes
}

// ListHotspots returns every hotspot in file order.
func (s *Service) ListHotspots(ctx context.Context) ([]dataset.Hotspot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrDataUnavailable
	}
	return s.store.Hotspots(), nil
}

// Recommend returns the in-hotspot restaurants reachable from the request
// origin, highest score first. Argument errors are reported before the
// isochrone service is called.
func (s *Service) Recommend(ctx context.Context, req Request) ([]dataset.Restaurant, error) {
	mode, err := reachability.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	minutes := s.defaultMinutes
	if req.Minutes != nil {
		minutes = *req.Minutes
	}
	origin := geo.Coordinate{Lat: req.Lat, Lon: req.Lon}
	if err := reachability.ValidateRequest(origin, mode); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrDataUnavailable
	}
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: no reachability client", ErrDataUnavailable)
	}

	area, err := s.fetcher.Fetch(ctx, origin, mode, minutes)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("mode", string(mode)).
		Int("minutes", minutes).
		Msg("Isochrone received")

	candidates := s.store.Candidates(area.Bound())
	return s.engine.Recommend(ctx, area, candidates), nil
}
