// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	// Status is "healthy", or "degraded" while the store breaker is open.
	Status  string `json:"status"`
	Version string `json:"version"`

	Books   int `json:"books"`
	Ratings int `json:"ratings"`

	// StoreState is the circuit breaker state: closed, half-open or open.
	StoreState string  `json:"store_state"`
	Uptime     float64 `json:"uptime_seconds"`
}
