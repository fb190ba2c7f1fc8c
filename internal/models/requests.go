// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

// HistoryItem marks a book as read by a user in a recommendation request.
type HistoryItem struct {
	UserID int `json:"user_id" validate:"gt=0"`
	BookID int `json:"book_id" validate:"gt=0"`
}

// RecommendationRequest is the body of POST /api/v1/recommendations.
//
// When History is nil the reader's history is derived from their reading
// list. An explicit empty array means "no history".
type RecommendationRequest struct {
	UserID  int           `json:"user_id" validate:"required,gt=0"`
	BookID  int           `json:"book_id" validate:"required,gt=0"`
	History []HistoryItem `json:"history" validate:"omitempty,max=1000,dive"`
	Mood    string        `json:"mood" validate:"mood"`
	K       int           `json:"k" validate:"gte=0,lte=50"`
}

// RatingRequest is the body of PUT /api/v1/users/{userID}/ratings/{bookID}.
type RatingRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review string `json:"review,omitempty" validate:"max=5000"`
}

// ReadingListRequest is the body of PUT /api/v1/users/{userID}/reading-list/{bookID}.
type ReadingListRequest struct {
	Status string `json:"status" validate:"required,oneof=want_to_read currently_reading finished"`
}

// SimilarRequest holds the validated query of GET /api/v1/books/{bookID}/similar.
type SimilarRequest struct {
	BookID int `json:"book_id" validate:"gt=0"`
	K      int `json:"k" validate:"gte=0,lte=50"`
}
