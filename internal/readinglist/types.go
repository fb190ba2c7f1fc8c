// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package readinglist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/shelfwise/internal/validation"
)

var (
	// ErrNotFound is returned when a rating or reading entry does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned when a record fails validation before write.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnavailable is returned when the store is temporarily rejecting calls.
	ErrUnavailable = errors.New("store unavailable")
)

// Status is a reading-list state.
type Status string

const (
	StatusWantToRead       Status = "want_to_read"
	StatusCurrentlyReading Status = "currently_reading"
	StatusFinished         Status = "finished"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusFinished:
		return true
	default:
		return false
	}
}

// RatingRecord is a user's rating of a book, with an optional review.
type RatingRecord struct {
	UserID    int       `json:"user_id" validate:"gt=0"`
	BookID    int       `json:"book_id" validate:"gt=0"`
	Rating    int       `json:"rating" validate:"gte=1,lte=5"`
	Review    string    `json:"review,omitempty" validate:"max=5000"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReadingEntry places a book on a user's reading list.
type ReadingEntry struct {
	UserID    int       `json:"user_id" validate:"gt=0"`
	BookID    int       `json:"book_id" validate:"gt=0"`
	Status    Status    `json:"status" validate:"oneof=want_to_read currently_reading finished"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists ratings and reading-list entries keyed by (user, book).
// Every call either succeeds or fails on its own.
type Store interface {
	// PutRating inserts or replaces the rating for (rec.UserID, rec.BookID).
	PutRating(ctx context.Context, rec RatingRecord) error

	// GetRating returns ErrNotFound when the user has not rated the book.
	GetRating(ctx context.Context, userID, bookID int) (RatingRecord, error)

	// SetStatus inserts or replaces the reading-list status of a book.
	SetStatus(ctx context.Context, userID, bookID int, status Status) error

	// GetStatus returns ErrNotFound when the book is not on the list.
	GetStatus(ctx context.Context, userID, bookID int) (ReadingEntry, error)

	// RemoveStatus takes a book off the list. Removing a missing entry is
	// not an error.
	RemoveStatus(ctx context.Context, userID, bookID int) error

	// List returns the user's reading list ordered by book id.
	List(ctx context.Context, userID int) ([]ReadingEntry, error)

	// Close releases the store's resources.
	Close() error
}

// validateRecord runs struct validation and wraps failures in ErrInvalidRecord.
func validateRecord(v interface{}) error {
	if err := validation.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, err.Error())
	}
	return nil
}
