// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "github.com/tomtom215/shelfwise/internal/catalog"

const (
	lightReadMaxPages = 300
	longEpicMinPages  = 500
)

// Matches reports whether book fits the mood. MoodNone and unrecognized
// moods match everything. Tag checks are case-insensitive substring matches.
func (m Mood) Matches(book catalog.Book) bool {
	switch m {
	case MoodLightRead:
		return book.PageCount < lightReadMaxPages || book.HasTag("comedy")
	case MoodLongEpic:
		return book.PageCount > longEpicMinPages || book.HasTag("epic")
	case MoodFantasy, MoodSciFi, MoodClassic:
		return book.HasTag(string(m))
	default:
		return true
	}
}

// FilterByMood removes recommendations whose book does not match mood.
// Order is preserved. Recommendations for books missing from the catalog
// are dropped unless mood is MoodNone.
func FilterByMood(books BookLookup, recs []Recommendation, mood Mood) []Recommendation {
	if mood == "" || mood == MoodNone {
		return recs
	}

	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		book, ok := books.BookByID(rec.BookID)
		if !ok {
			continue
		}
		if mood.Matches(book) {
			out = append(out, rec)
		}
	}
	return out
}
