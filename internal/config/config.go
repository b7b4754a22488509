// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
	Data         DataConfig         `koanf:"data"`
	Reachability ReachabilityConfig `koanf:"reachability"`
	Recommend    RecommendConfig    `koanf:"recommend"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DataConfig locates the two GeoJSON inputs and names their attributes.
type DataConfig struct {
	HotspotsPath    string `koanf:"hotspots_path"`
	RestaurantsPath string `koanf:"restaurants_path"`

	// ScoreProperty is the restaurant attribute holding the weighted score.
	ScoreProperty string `koanf:"score_property"`

	// WeightProperty is the hotspot attribute holding the display weight.
	WeightProperty string `koanf:"weight_property"`

	// IndexCellSize is the restaurant grid cell edge in degrees.
	IndexCellSize float64 `koanf:"index_cell_size"`
}

// ReachabilityConfig configures the isochrone client.
type ReachabilityConfig struct {
	BaseURL          string               `koanf:"base_url"`
	ProfilePrefix    string               `koanf:"profile_prefix"`
	AccessToken      string               `koanf:"access_token"`
	Timeout          time.Duration        `koanf:"timeout"`
	MaxResponseBytes int64                `koanf:"max_response_bytes"`
	CircuitBreaker   CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig maps onto gobreaker.Settings.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig holds query defaults.
type RecommendConfig struct {
	DefaultMinutes int `koanf:"default_minutes"`
}
