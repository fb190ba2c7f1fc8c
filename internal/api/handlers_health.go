// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/models"
)

// Health handles GET /api/v1/health.
//
// The service stays up while the store breaker is open, since similarity
// and catalog endpoints do not need the store; status reports "degraded".
//
// @Summary Get service health
// @Description Returns catalog counts, store breaker state and uptime.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	state := h.storeState()
	status := "healthy"
	if state == "open" {
		status = "degraded"
	}

	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:     status,
		Version:    Version,
		Books:      h.catalog.Len(),
		Ratings:    len(h.catalog.Ratings()),
		StoreState: state,
		Uptime:     time.Since(h.startTime).Seconds(),
	}, start)
}
