// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "github.com/tomtom215/shelfwise/internal/catalog"

// Vector is a sparse rating vector: user id -> rating.
// Missing users are treated as rating 0.
type Vector map[int]float64

// Matrix is the book -> (user -> rating) sparse matrix built from ratings.
//
// Invariant: every inner vector only holds users that rated that book.
// Book and user orders record first appearance in the input, which keeps
// ranking deterministic on ties.
type Matrix struct {
	rows      map[int]Vector
	bookOrder []int
	users     []int
}

// BuildMatrix builds the rating matrix. Duplicate (book, user) pairs are not
// aggregated; the last occurrence wins.
func BuildMatrix(ratings []catalog.Rating) *Matrix {
	m := &Matrix{
		rows: make(map[int]Vector),
	}
	seenUsers := make(map[int]struct{})

	for _, r := range ratings {
		row, ok := m.rows[r.BookID]
		if !ok {
			row = make(Vector)
			m.rows[r.BookID] = row
			m.bookOrder = append(m.bookOrder, r.BookID)
		}
		row[r.UserID] = float64(r.Rating)

		if _, ok := seenUsers[r.UserID]; !ok {
			seenUsers[r.UserID] = struct{}{}
			m.users = append(m.users, r.UserID)
		}
	}

	return m
}

// Vector returns the rating vector for a book.
// The second return value is false when nobody rated the book.
func (m *Matrix) Vector(bookID int) (Vector, bool) {
	v, ok := m.rows[bookID]
	return v, ok
}

// Books returns the rated book ids in first-appearance order.
func (m *Matrix) Books() []int {
	out := make([]int, len(m.bookOrder))
	copy(out, m.bookOrder)
	return out
}

// Users returns every user id that appears in any rating, in
// first-appearance order. This is the universe similarity is computed over.
func (m *Matrix) Users() []int {
	out := make([]int, len(m.users))
	copy(out, m.users)
	return out
}

// Len returns the number of rated books.
func (m *Matrix) Len() int {
	return len(m.bookOrder)
}
