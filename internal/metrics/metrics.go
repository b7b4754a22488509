// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Isochrone upstream
	IsochroneRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "isochrone_requests_total",
			Help: "Isochrone requests by travel mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: success, upstream_unavailable, upstream_error, upstream_bad_response
	)

	IsochroneRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "isochrone_request_duration_seconds",
			Help:    "Round trip time of isochrone requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"mode"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Datasets
	DatasetFeatures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_features",
			Help: "Features loaded at startup",
		},
		[]string{"collection"}, // hotspots, restaurants, scored_restaurants
	)

	// Recommendations
	RecommendationCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Restaurants surviving each recommendation stage",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"stage"}, // reachable, ranked
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments (true) or decrements (false) the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIsochroneRequest records one upstream call.
func RecordIsochroneRequest(mode, outcome string, duration time.Duration) {
	IsochroneRequestsTotal.WithLabelValues(mode, outcome).Inc()
	IsochroneRequestDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordDatasetLoaded publishes collection sizes after startup.
func RecordDatasetLoaded(hotspots, restaurants, scored int) {
	DatasetFeatures.WithLabelValues("hotspots").Set(float64(hotspots))
	DatasetFeatures.WithLabelValues("restaurants").Set(float64(restaurants))
	DatasetFeatures.WithLabelValues("scored_restaurants").Set(float64(scored))
}

// RecordRecommendation observes how many restaurants were reachable and how
// many of those were ranked.
func RecordRecommendation(reachable, ranked int) {
	RecommendationCandidates.WithLabelValues("reachable").Observe(float64(reachable))
	RecommendationCandidates.WithLabelValues("ranked").Observe(float64(ranked))
}
