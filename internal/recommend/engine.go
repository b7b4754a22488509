// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/geo"
	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/metrics"
)

// Engine wraps Recommend with logging and metrics.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates an engine that logs through logger.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("component", "recommend").Logger()}
}

// Recommend ranks the candidates inside area. It never blocks; ctx only
// supplies request fields for logging.
func (e *Engine) Recommend(ctx context.Context, area *geo.Area, candidates []dataset.Restaurant) []dataset.Restaurant {
	start := time.Now()
	ranked, reachable := run(area, candidates)
	metrics.RecordRecommendation(reachable, len(ranked))

	e.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Int("candidates", len(candidates)).
		Int("reachable", reachable).
		Int("ranked", len(ranked)).
		Dur("took", time.Since(start)).
		Msg("Recommendation computed")
	return ranked
}
