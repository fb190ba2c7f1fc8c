// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package readinglist stores per-user book ratings and reading-list statuses.
//
// BadgerStore keeps records in BadgerDB as JSON under
//
//	rating:<user_id>:<book_id>
//	reading:<user_id>:<book_id>
//
// ResilientStore wraps any Store in a circuit breaker so a failing backend
// is rejected quickly with ErrUnavailable instead of blocking requests.
//
// The recommendation engine never holds a Store. Callers turn reading-list
// entries into history with HistoryFromEntries and pass it in explicitly.
package readinglist
