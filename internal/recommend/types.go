// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

// ErrUnknownMood is returned by ParseMood for strings outside the mood set.
var ErrUnknownMood = errors.New("unknown mood")

// Mood is a contextual filter applied after ranking.
type Mood string

const (
	// MoodNone passes every recommendation through.
	MoodNone Mood = "none"
	// MoodLightRead keeps short books and comedies.
	MoodLightRead Mood = "light_read"
	// MoodLongEpic keeps long books and epics.
	MoodLongEpic Mood = "long_epic"
	// MoodFantasy keeps books tagged fantasy.
	MoodFantasy Mood = "fantasy"
	// MoodSciFi keeps books tagged sci-fi.
	MoodSciFi Mood = "sci-fi"
	// MoodClassic keeps books tagged classic.
	MoodClassic Mood = "classic"
)

// Moods lists every supported mood in display order.
var Moods = []Mood{MoodNone, MoodLightRead, MoodLongEpic, MoodFantasy, MoodSciFi, MoodClassic}

// ParseMood converts a string to a Mood. The empty string maps to MoodNone.
func ParseMood(s string) (Mood, error) {
	if s == "" {
		return MoodNone, nil
	}
	for _, m := range Moods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

// String returns the mood identifier.
func (m Mood) String() string {
	return string(m)
}

// Label returns the mood as shown in recommendation reasons: the first
// underscore becomes a space ("light_read" -> "light read").
func (m Mood) Label() string {
	return strings.Replace(string(m), "_", " ", 1)
}

// Recommendation is a single ranked book.
type Recommendation struct {
	// BookID is the recommended book.
	BookID int `json:"book_id"`

	// Title is the book title.
	Title string `json:"title"`

	// Author is the book author.
	Author string `json:"author"`

	// Genre is the primary genre.
	Genre string `json:"genre"`

	// Similarity is the cosine similarity to the target book, or 1.0 for a
	// sequential pick.
	Similarity float64 `json:"similarity"`

	// Reason explains why the book was recommended.
	Reason string `json:"reason,omitempty"`

	// IsSequential marks the next-in-series pick.
	IsSequential bool `json:"is_sequential"`
}

// newRecommendation builds a Recommendation from catalog metadata.
func newRecommendation(b catalog.Book, similarity float64) Recommendation {
	return Recommendation{
		BookID:     b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Genre:      b.Genre,
		Similarity: similarity,
	}
}

// EnhancedRequest is the input to Engine.EnhancedRecommend.
type EnhancedRequest struct {
	// UserID is the reader the recommendations are for.
	UserID int

	// BookID is the book the reader is looking at.
	BookID int

	// History is the caller-supplied read history.
	History []catalog.UserHistory

	// Mood narrows the similarity results. The zero value behaves as MoodNone.
	Mood Mood

	// Count is the maximum number of results.
	// Defaults to Config.EnhancedDefaultCount if zero.
	Count int
}
