// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAccessToken is returned when no isochrone credential is configured.
var ErrMissingAccessToken = errors.New("MAPBOX_ACCESS_TOKEN is required")

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateReachability(); err != nil {
		return err
	}
	return c.validateRecommend()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.HotspotsPath) == "" {
		return fmt.Errorf("HOTSPOTS_PATH is required")
	}
	if strings.TrimSpace(c.Data.RestaurantsPath) == "" {
		return fmt.Errorf("RESTAURANTS_PATH is required")
	}
	if c.Data.ScoreProperty == "" {
		return fmt.Errorf("SCORE_PROPERTY must not be empty")
	}
	if c.Data.IndexCellSize <= 0 {
		return fmt.Errorf("INDEX_CELL_SIZE must be positive, got %v", c.Data.IndexCellSize)
	}
	return nil
}

func (c *Config) validateReachability() error {
	r := c.Reachability
	if strings.TrimSpace(r.AccessToken) == "" {
		return ErrMissingAccessToken
	}
	if err := validateBaseURL(r.BaseURL, "ISOCHRONE_BASE_URL"); err != nil {
		return err
	}
	if r.ProfilePrefix == "" || strings.Contains(r.ProfilePrefix, "/") {
		return fmt.Errorf("ISOCHRONE_PROFILE_PREFIX must be a single path segment, got %q", r.ProfilePrefix)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("ISOCHRONE_TIMEOUT must be positive")
	}
	if r.MaxResponseBytes <= 0 {
		return fmt.Errorf("ISOCHRONE_MAX_RESPONSE_BYTES must be positive")
	}
	return c.validateCircuitBreaker()
}

func (c *Config) validateCircuitBreaker() error {
	cb := c.Reachability.CircuitBreaker
	if !cb.Enabled {
		return nil
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("CIRCUIT_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cb.FailureRatio)
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_TIMEOUT must be positive")
	}
	if cb.MinRequests == 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_MIN_REQUESTS must be at least 1")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultMinutes < 1 {
		return fmt.Errorf("DEFAULT_MINUTES must be at least 1, got %d", c.Recommend.DefaultMinutes)
	}
	return nil
}
