// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package metrics provides Prometheus instrumentation for Medley:
// upstream source calls, circuit breakers, caches, recommendation latency,
// and the HTTP API surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream source metrics
	SourceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_requests_total",
			Help: "Total number of requests to upstream content APIs",
		},
		[]string{"source", "operation", "status"},
	)

	SourceRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_request_duration_seconds",
			Help:    "Duration of upstream API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "operation"},
	)

	SourceRateLimitRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_rate_limit_retries_total",
			Help: "Total number of retries caused by upstream HTTP 429 responses",
		},
		[]string{"source"},
	)

	SourceKeyRotations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_key_rotations_total",
			Help: "Total number of API key rotations after a failed key",
		},
		[]string{"source"},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"breaker"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total requests through circuit breakers by outcome",
		},
		[]string{"breaker", "outcome"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"breaker", "from", "to"},
	)

	// Cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total cache hits by cache name",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total cache misses by cache name",
		},
		[]string{"cache"},
	)

	// News store metrics
	NewsArticlesMerged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_merged_total",
			Help: "Total new articles appended to the local news cache",
		},
		[]string{"tag"},
	)

	NewsStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_store_articles",
			Help: "Current number of articles in the local news cache",
		},
	)

	NewsRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_refreshes_total",
			Help: "Total news topic refresh attempts by outcome",
		},
		[]string{"topic", "outcome"},
	)

	// Recommendation metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"domain"},
	)

	RecommendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_fallbacks_total",
			Help: "Total recommendation requests served by the non-personalized fallback",
		},
		[]string{"domain", "reason"},
	)

	// API metrics
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
)

// ObserveSourceRequest records one upstream request outcome.
func ObserveSourceRequest(source, operation string, status int, duration time.Duration) {
	outcome := "success"
	if status == 0 || status >= 400 {
		outcome = "failure"
	}
	SourceRequestsTotal.WithLabelValues(source, operation, outcome).Inc()
	SourceRequestDuration.WithLabelValues(source, operation).Observe(duration.Seconds())
}

// ObserveAPIRequest records one API request outcome.
func ObserveAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
