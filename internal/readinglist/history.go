// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package readinglist

import "github.com/tomtom215/shelfwise/internal/catalog"

// HistoryFromEntries converts reading-list entries into read history.
// Finished and currently-reading books count as read; want-to-read does not.
func HistoryFromEntries(entries []ReadingEntry) []catalog.UserHistory {
	history := make([]catalog.UserHistory, 0, len(entries))
	for _, e := range entries {
		switch e.Status {
		case StatusFinished, StatusCurrentlyReading:
			history = append(history, catalog.UserHistory{UserID: e.UserID, BookID: e.BookID})
		}
	}
	return history
}
