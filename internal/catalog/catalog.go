// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned when seed tables fail validation.
var ErrInvalidSeed = errors.New("invalid seed data")

// Rating bounds accepted by the catalog and the store.
const (
	MinRating = 1
	MaxRating = 5
)

// Catalog is the immutable set of books and ratings.
type Catalog struct {
	books   []Book
	byID    map[int]int
	ratings []Rating
}

// seedFile is the YAML layout accepted by LoadFile.
type seedFile struct {
	Books   []Book   `yaml:"books"`
	Ratings []Rating `yaml:"ratings"`
}

// New builds a catalog from books and ratings.
// Book ids must be unique and positive; every rating must reference a known
// book and fall within [MinRating, MaxRating]. Duplicate (user, book) ratings
// are kept as-is.
func New(books []Book, ratings []Rating) (*Catalog, error) {
	c := &Catalog{
		books:   make([]Book, len(books)),
		byID:    make(map[int]int, len(books)),
		ratings: make([]Rating, len(ratings)),
	}
	copy(c.books, books)
	copy(c.ratings, ratings)

	for i, b := range c.books {
		if b.ID <= 0 {
			return nil, fmt.Errorf("%w: book %q has non-positive id %d", ErrInvalidSeed, b.Title, b.ID)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate book id %d", ErrInvalidSeed, b.ID)
		}
		c.byID[b.ID] = i
	}

	for i, r := range c.ratings {
		if r.Rating < MinRating || r.Rating > MaxRating {
			return nil, fmt.Errorf("%w: rating %d at index %d out of range", ErrInvalidSeed, r.Rating, i)
		}
		if _, ok := c.byID[r.BookID]; !ok {
			return nil, fmt.Errorf("%w: rating at index %d references unknown book %d", ErrInvalidSeed, i, r.BookID)
		}
	}

	return c, nil
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	c, err := New(seedBooks, seedRatings)
	if err != nil {
		// The built-in tables are covered by tests.
		panic(fmt.Sprintf("catalog: built-in seed is invalid: %v", err))
	}
	return c
}

// LoadFile reads a YAML seed file and builds a catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML seed bytes.
func Parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidSeed, err)
	}
	if len(seed.Books) == 0 {
		return nil, fmt.Errorf("%w: no books", ErrInvalidSeed)
	}
	return New(seed.Books, seed.Ratings)
}

// BookByID returns the book with the given id.
func (c *Catalog) BookByID(id int) (Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// Books returns all books in seed order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Ratings returns all ratings in seed order.
func (c *Catalog) Ratings() []Rating {
	out := make([]Rating, len(c.ratings))
	copy(out, c.ratings)
	return out
}

// FindBySeries returns the first book, in seed order, whose series matches
// name and index exactly.
func (c *Catalog) FindBySeries(name string, index int) (Book, bool) {
	for _, b := range c.books {
		s, ok := b.Series()
		if ok && s.Name == name && s.Index == index {
			return b, true
		}
	}
	return Book{}, false
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}
