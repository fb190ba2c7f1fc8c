// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package recommend implements item-based collaborative filtering for books,
// with sequential series detection and mood filtering layered on top.
//
// # Pipeline
//
// Every request is computed from scratch over the immutable catalog:
//
//   - Matrix: ratings become a book -> (user -> rating) sparse matrix,
//     last write wins for duplicate (book, user) pairs
//   - Similarity: cosine similarity over the universe of all raters,
//     saturating to 0 when either vector has zero norm
//   - Ranking: every other book is scored against the target, stable-sorted
//     by similarity descending, and truncated
//   - Sequential: a "<Name> (<index>)" series position plus read history
//     proposes the next volume
//   - Mood: a post-hoc predicate over page count and genre tags
//
// # Usage
//
//	engine, err := recommend.NewEngine(catalog.Default(), recommend.DefaultConfig(), logger)
//
//	similar := engine.Recommend(ctx, 101, 3)
//
//	recs := engine.EnhancedRecommend(ctx, recommend.EnhancedRequest{
//	    UserID:  1,
//	    BookID:  106,
//	    History: history,
//	    Mood:    recommend.MoodFantasy,
//	})
//
// # Errors
//
// The engine never fails. Unknown books, books with no ratings, malformed
// series labels and zero-norm vectors all degrade to empty results or
// neutral defaults.
//
// # Thread Safety
//
// The engine holds no mutable state and is safe for concurrent use.
package recommend
