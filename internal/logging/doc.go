// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package logging wraps zerolog behind a process-wide logger.
//
// The logger writes JSON by default and human-readable console output when
// LOG_FORMAT=console. Request-scoped fields (request_id, correlation_id) are
// carried through context.Context and attached by Ctx:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", path).Msg("Dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Isochrone request failed")
//
// Libraries that expect a *slog.Logger (sutureslog) get one from
// NewSlogLogger, which forwards every record to zerolog.
package logging
