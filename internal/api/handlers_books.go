// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/models"
)

// Books handles GET /api/v1/books and returns the catalog in seed order.
//
// @Summary List the catalog
// @Description Returns every book in seed order.
// @Tags Books
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]catalog.Book} "Catalog"
// @Router /books [get]
func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	books := h.catalog.Books()
	respondList(w, books, len(books), start)
}

// Book handles GET /api/v1/books/{bookID}.
//
// @Summary Get a book
// @Tags Books
// @Produce json
// @Param bookID path int true "Book ID"
// @Success 200 {object} models.APIResponse{data=catalog.Book} "Book"
// @Failure 400 {object} models.APIResponse "Invalid book ID"
// @Failure 404 {object} models.APIResponse "Book not found"
// @Router /books/{bookID} [get]
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	bookID, ok := pathInt(w, r, "bookID")
	if !ok {
		return
	}

	book, found := h.catalog.BookByID(bookID)
	if !found {
		respondBookNotFound(w, bookID)
		return
	}

	respondSuccess(w, http.StatusOK, book, start)
}

// SimilarBooks handles GET /api/v1/books/{bookID}/similar?k=.
//
// A catalog book nobody rated returns an empty list, not an error.
//
// @Summary Find similar books
// @Description Ranks books by cosine similarity of their rating vectors.
// @Tags Recommendations
// @Produce json
// @Param bookID path int true "Book ID"
// @Param k query int false "Number of results (0-50, default 3)"
// @Success 200 {object} models.APIResponse{data=[]recommend.Recommendation} "Similar books"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Book not found"
// @Router /books/{bookID}/similar [get]
func (h *Handler) SimilarBooks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	bookID, ok := pathInt(w, r, "bookID")
	if !ok {
		return
	}
	k, ok := getIntParam(r, "k", 0)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "k must be an integer", nil)
		return
	}

	req := models.SimilarRequest{BookID: bookID, K: k}
	if !validateRequest(w, &req) {
		return
	}

	if _, found := h.catalog.BookByID(bookID); !found {
		respondBookNotFound(w, bookID)
		return
	}

	recs := h.engine.Recommend(r.Context(), req.BookID, req.K)
	metrics.RecordRecommendation("similar", "", len(recs), time.Since(start))

	respondList(w, recs, len(recs), start)
}

func respondBookNotFound(w http.ResponseWriter, bookID int) {
	respondErrorWithDetails(w, http.StatusNotFound, ErrCodeBookNotFound,
		fmt.Sprintf("Book %d not found", bookID),
		map[string]interface{}{"book_id": bookID}, nil)
}
