// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Book is a catalog entry.
type Book struct {
	// ID is the unique book identifier.
	ID int `json:"id" yaml:"id"`

	// Title is the book title.
	Title string `json:"title" yaml:"title"`

	// Author is the book author.
	Author string `json:"author" yaml:"author"`

	// Genre is the primary genre shown to readers.
	Genre string `json:"genre" yaml:"genre"`

	// Genres is a comma-separated tag string used for mood filtering
	// (e.g. "Fantasy, Epic").
	Genres string `json:"genres" yaml:"genres"`

	// PageCount is the number of pages.
	PageCount int `json:"page_count" yaml:"page_count"`

	// SeriesLabel is the optional "<Name> (<index>)" label.
	SeriesLabel string `json:"series,omitempty" yaml:"series,omitempty"`
}

// Series returns the parsed series of the book.
// The second return value is false when the book has no well-formed label.
func (b Book) Series() (Series, bool) {
	return ParseSeries(b.SeriesLabel)
}

// HasTag reports whether the tag string contains tag, case-insensitively.
func (b Book) HasTag(tag string) bool {
	return strings.Contains(strings.ToLower(b.Genres), strings.ToLower(tag))
}

// Rating is a single user rating of a book (1-5).
type Rating struct {
	UserID int `json:"user_id" yaml:"user_id"`
	BookID int `json:"book_id" yaml:"book_id"`
	Rating int `json:"rating" yaml:"rating"`
}

// UserHistory marks a book as read by a user. Entries carry no ordering.
type UserHistory struct {
	UserID int `json:"user_id" yaml:"user_id"`
	BookID int `json:"book_id" yaml:"book_id"`
}

// HasRead reports whether history contains (userID, bookID).
// Entries belonging to other users are ignored.
func HasRead(history []UserHistory, userID, bookID int) bool {
	for _, h := range history {
		if h.UserID == userID && h.BookID == bookID {
			return true
		}
	}
	return false
}

// Series is a structured series position.
type Series struct {
	// Name is the series name, e.g. "The Lord of the Rings".
	Name string `json:"name"`

	// Index is the 1-based volume number.
	Index int `json:"index"`
}

// String formats the series back into its label form.
func (s Series) String() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.Index)
}

// seriesPattern matches "<name> (<digits>)" with a single whitespace
// character before the parenthesis.
var seriesPattern = regexp.MustCompile(`^(.+)\s\((\d+)\)$`)

// ParseSeries parses a "<Name> (<index>)" label.
// Returns false for empty labels, labels without the suffix, non-positive
// or overflowing indices, and indices not in canonical form ("X (02)").
func ParseSeries(label string) (Series, bool) {
	if label == "" {
		return Series{}, false
	}

	m := seriesPattern.FindStringSubmatch(label)
	if m == nil {
		return Series{}, false
	}

	idx, err := strconv.Atoi(m[2])
	if err != nil || idx < 1 || strconv.Itoa(idx) != m[2] {
		return Series{}, false
	}

	return Series{Name: m[1], Index: idx}, true
}
