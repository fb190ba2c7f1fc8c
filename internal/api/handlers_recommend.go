// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/readinglist"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// historyLookupTimeout bounds the reading-list read used to derive history.
const historyLookupTimeout = 2 * time.Second

// Recommendations handles POST /api/v1/recommendations.
//
// Body: {user_id, book_id, history?, mood?, k?}. When history is omitted it
// is derived from the user's reading list; if the store cannot answer, the
// request fails rather than silently dropping the sequential pick.
//
// @Summary Get enhanced recommendations
// @Description Next-in-series pick first, then similar books filtered by mood.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Recommendation request"
// @Success 200 {object} models.APIResponse{data=[]recommend.Recommendation} "Recommendations"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Book not found"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	mood, err := recommend.ParseMood(req.Mood)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	if _, found := h.catalog.BookByID(req.BookID); !found {
		respondBookNotFound(w, req.BookID)
		return
	}

	history, err := h.resolveHistory(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	recs := h.engine.EnhancedRecommend(r.Context(), recommend.EnhancedRequest{
		UserID:  req.UserID,
		BookID:  req.BookID,
		History: history,
		Mood:    mood,
		Count:   req.K,
	})

	metrics.RecordRecommendation("enhanced", mood.String(), len(recs), time.Since(start))
	if len(recs) > 0 && recs[0].IsSequential {
		metrics.SequentialPicks.Inc()
	}

	respondList(w, recs, len(recs), start)
}

// resolveHistory returns the request's history, or the user's reading list
// as history when the request carries none.
func (h *Handler) resolveHistory(ctx context.Context, req models.RecommendationRequest) ([]catalog.UserHistory, error) {
	if req.History != nil {
		history := make([]catalog.UserHistory, len(req.History))
		for i, item := range req.History {
			history[i] = catalog.UserHistory{UserID: item.UserID, BookID: item.BookID}
		}
		return history, nil
	}

	ctx, cancel := context.WithTimeout(ctx, historyLookupTimeout)
	defer cancel()

	entries, err := h.store.List(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	history := readinglist.HistoryFromEntries(entries)
	logging.Ctx(ctx).Debug().
		Int("user_id", req.UserID).
		Int("entries", len(entries)).
		Int("history", len(history)).
		Msg("Derived history from reading list")

	return history, nil
}
