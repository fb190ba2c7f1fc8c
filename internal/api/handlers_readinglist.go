// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/readinglist"
)

// userBook parses {userID} and {bookID} and checks the book is in the
// catalog. It writes the error response and returns false on failure.
func (h *Handler) userBook(w http.ResponseWriter, r *http.Request) (userID, bookID int, ok bool) {
	if userID, ok = pathInt(w, r, "userID"); !ok {
		return 0, 0, false
	}
	if bookID, ok = pathInt(w, r, "bookID"); !ok {
		return 0, 0, false
	}
	if _, found := h.catalog.BookByID(bookID); !found {
		respondBookNotFound(w, bookID)
		return 0, 0, false
	}
	return userID, bookID, true
}

// PutRating handles PUT /api/v1/users/{userID}/ratings/{bookID}.
//
// Stored ratings are per-user records; they do not feed the similarity
// matrix, which is built from the seed ratings.
//
// @Summary Rate a book
// @Description Creates or replaces the user's rating and optional review.
// @Tags Reading List
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param bookID path int true "Book ID"
// @Param request body models.RatingRequest true "Rating"
// @Success 200 {object} models.APIResponse{data=readinglist.RatingRecord} "Stored rating"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Book not found"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /users/{userID}/ratings/{bookID} [put]
func (h *Handler) PutRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, bookID, ok := h.userBook(w, r)
	if !ok {
		return
	}

	var req models.RatingRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	rec := readinglist.RatingRecord{
		UserID: userID,
		BookID: bookID,
		Rating: req.Rating,
		Review: req.Review,
	}
	if err := h.store.PutRating(r.Context(), rec); err != nil {
		respondStoreError(w, err)
		return
	}

	// The store stamps UpdatedAt; answer with what it kept.
	stored, err := h.store.GetRating(r.Context(), userID, bookID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, stored, start)
}

// GetRating handles GET /api/v1/users/{userID}/ratings/{bookID}.
//
// @Summary Get a rating
// @Tags Reading List
// @Produce json
// @Param userID path int true "User ID"
// @Param bookID path int true "Book ID"
// @Success 200 {object} models.APIResponse{data=readinglist.RatingRecord} "Rating"
// @Failure 404 {object} models.APIResponse "Rating not found"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /users/{userID}/ratings/{bookID} [get]
func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, bookID, ok := h.userBook(w, r)
	if !ok {
		return
	}

	rec, err := h.store.GetRating(r.Context(), userID, bookID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, rec, start)
}

// PutReadingStatus handles PUT /api/v1/users/{userID}/reading-list/{bookID}.
//
// @Summary Set reading status
// @Tags Reading List
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param bookID path int true "Book ID"
// @Param request body models.ReadingListRequest true "Status"
// @Success 200 {object} models.APIResponse{data=readinglist.ReadingEntry} "Stored entry"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Book not found"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /users/{userID}/reading-list/{bookID} [put]
func (h *Handler) PutReadingStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, bookID, ok := h.userBook(w, r)
	if !ok {
		return
	}

	var req models.ReadingListRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	status := readinglist.Status(req.Status)
	if err := h.store.SetStatus(r.Context(), userID, bookID, status); err != nil {
		respondStoreError(w, err)
		return
	}

	entry, err := h.store.GetStatus(r.Context(), userID, bookID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, entry, start)
}

// DeleteReadingStatus handles DELETE /api/v1/users/{userID}/reading-list/{bookID}.
// Removing a book that is not on the list succeeds.
//
// @Summary Remove from reading list
// @Tags Reading List
// @Produce json
// @Param userID path int true "User ID"
// @Param bookID path int true "Book ID"
// @Success 204 "Removed"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /users/{userID}/reading-list/{bookID} [delete]
func (h *Handler) DeleteReadingStatus(w http.ResponseWriter, r *http.Request) {
	userID, bookID, ok := h.userBook(w, r)
	if !ok {
		return
	}

	if err := h.store.RemoveStatus(r.Context(), userID, bookID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReadingList handles GET /api/v1/users/{userID}/reading-list.
//
// @Summary List a reading list
// @Description Returns the user's entries sorted by book ID.
// @Tags Reading List
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.APIResponse{data=[]readinglist.ReadingEntry} "Entries"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /users/{userID}/reading-list [get]
func (h *Handler) ReadingList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := pathInt(w, r, "userID")
	if !ok {
		return
	}

	entries, err := h.store.List(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if entries == nil {
		entries = []readinglist.ReadingEntry{}
	}

	respondList(w, entries, len(entries), start)
}
