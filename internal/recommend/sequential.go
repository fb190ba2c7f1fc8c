// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "github.com/tomtom215/shelfwise/internal/catalog"

// BookLookup is the catalog surface the sequential detector and mood filter
// need. *catalog.Catalog implements it.
type BookLookup interface {
	BookByID(id int) (catalog.Book, bool)
	FindBySeries(name string, index int) (catalog.Book, bool)
}

// DetectSequential proposes a series volume for userID based on bookID and
// the user's history. Only history entries for userID are considered.
//
// Rules, in order:
//  1. The user read bookID and volume index+1 exists: return that volume.
//  2. bookID is not the first volume and the user read volume index-1:
//     return bookID itself.
//
// The second return value is false when neither rule applies or bookID has
// no well-formed series label.
func DetectSequential(books BookLookup, userID, bookID int, history []catalog.UserHistory) (int, bool) {
	book, ok := books.BookByID(bookID)
	if !ok {
		return 0, false
	}

	series, ok := book.Series()
	if !ok {
		return 0, false
	}

	if catalog.HasRead(history, userID, bookID) {
		if next, ok := books.FindBySeries(series.Name, series.Index+1); ok {
			return next.ID, true
		}
	}

	if series.Index > 1 {
		prev, ok := books.FindBySeries(series.Name, series.Index-1)
		if ok && catalog.HasRead(history, userID, prev.ID) {
			return bookID, true
		}
	}

	return 0, false
}
