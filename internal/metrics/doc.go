// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)

Recommendation Metrics:
  - recommendation_requests_total: Computations (counter)
    Labels: kind (similar, enhanced), mood
  - recommendation_duration_seconds: Compute time (histogram)
  - recommendation_results: Result count per request (histogram)
  - recommendation_sequential_picks_total: Next-in-series picks (counter)

Store Metrics:
  - store_operation_duration_seconds: Reading-list store latency (histogram)
    Labels: operation
  - store_operation_errors_total: Failed store operations (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	recs := engine.Recommend(ctx, bookID, k)
	metrics.RecordRecommendation("similar", "", len(recs), time.Since(start))
*/
package metrics
