// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/wheretodine/internal/api"
	"github.com/tomtom215/wheretodine/internal/config"
	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/query"
	"github.com/tomtom215/wheretodine/internal/reachability"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds the wired components.
type app struct {
	store  *dataset.Store
	client *reachability.Client
	server *http.Server
}

// newApp loads the datasets and wires the HTTP server. Dataset errors wrap
// dataset.ErrStartupData.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, err := dataset.Load(ctx, dataset.Options{
		HotspotsPath:    cfg.Data.HotspotsPath,
		RestaurantsPath: cfg.Data.RestaurantsPath,
		ScoreProperty:   cfg.Data.ScoreProperty,
		WeightProperty:  cfg.Data.WeightProperty,
		CellSize:        cfg.Data.IndexCellSize,
	})
	if err != nil {
		return nil, err
	}

	cb := cfg.Reachability.CircuitBreaker
	client, err := reachability.NewClient(reachability.Options{
		BaseURL:          cfg.Reachability.BaseURL,
		ProfilePrefix:    cfg.Reachability.ProfilePrefix,
		AccessToken:      cfg.Reachability.AccessToken,
		Timeout:          cfg.Reachability.Timeout,
		MaxResponseBytes: cfg.Reachability.MaxResponseBytes,
		Breaker: reachability.BreakerSettings{
			Enabled:      cb.Enabled,
			MaxRequests:  cb.MaxRequests,
			Interval:     cb.Interval,
			Timeout:      cb.Timeout,
			MinRequests:  cb.MinRequests,
			FailureRatio: cb.FailureRatio,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create isochrone client: %w", err)
	}

	svc := query.New(store, client, query.Options{DefaultMinutes: cfg.Recommend.DefaultMinutes})
	handler := api.NewHandler(svc, api.HandlerOptions{Version: version, Stats: store.Stats()})
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.Reachability.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	logging.Info().
		Str("addr", server.Addr).
		Bool("circuit_breaker", cb.Enabled).
		Int("default_minutes", svc.DefaultMinutes()).
		Msg("HTTP server configured")

	return &app{store: store, client: client, server: server}, nil
}
