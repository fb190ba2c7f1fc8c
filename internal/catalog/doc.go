// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package catalog holds the immutable reference data the recommendation
// engine works over: books, the sparse user-rating table, and user read
// history markers.
//
// # Seed Data
//
// Default returns the built-in seed of 14 books and 24 ratings. LoadFile
// reads a YAML seed with the same shape when an operator wants to swap the
// tables without rebuilding:
//
//	books:
//	  - id: 106
//	    title: A Game of Thrones
//	    author: George R.R. Martin
//	    genre: Fantasy
//	    genres: Fantasy, Epic
//	    page_count: 694
//	    series: A Song of Ice and Fire (1)
//	ratings:
//	  - {user_id: 1, book_id: 106, rating: 5}
//
// # Series Labels
//
// A series label has the form "<Name> (<index>)". ParseSeries turns it into
// a structured Series; labels that do not match that exact shape have no
// series. Lookups by (name, index) compare against the parsed pair, which
// matches the original label comparison for every well-formed label.
//
// # Thread Safety
//
// A Catalog is never mutated after construction and is safe for concurrent
// use. Accessors return copies of the internal slices.
package catalog
