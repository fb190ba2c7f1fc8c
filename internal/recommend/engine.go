// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

const (
	sequentialSimilarity = 1.0
	similarReason        = "Similar book"
)

// Engine produces recommendations from an immutable catalog.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// BookByID returns the catalog entry for id.
func (e *Engine) BookByID(id int) (catalog.Book, bool) {
	return e.catalog.BookByID(id)
}

// Books returns the full catalog.
func (e *Engine) Books() []catalog.Book {
	return e.catalog.Books()
}

// Recommend returns up to count books most similar to targetBookID.
// A non-positive count uses Config.DefaultCount. Unknown or unrated targets
// yield an empty result.
func (e *Engine) Recommend(ctx context.Context, targetBookID, count int) []Recommendation {
	count = e.config.clamp(count, e.config.DefaultCount)
	return e.similar(ctx, targetBookID, count)
}

func (e *Engine) similar(ctx context.Context, targetBookID, count int) []Recommendation {
	m := BuildMatrix(e.catalog.Ratings())
	neighbors := RankSimilar(m, targetBookID, count)

	recs := make([]Recommendation, 0, len(neighbors))
	for _, n := range neighbors {
		book, ok := e.catalog.BookByID(n.BookID)
		if !ok {
			continue
		}
		recs = append(recs, newRecommendation(book, n.Similarity))
	}

	e.logger.Debug().
		Ctx(ctx).
		Int("book_id", targetBookID).
		Int("requested", count).
		Int("returned", len(recs)).
		Msg("computed similar books")

	return recs
}

// EnhancedRecommend combines the sequential pick, similarity ranking and
// mood filtering into at most req.Count recommendations.
//
// The sequential pick, when present and distinct from the target, is always
// first with similarity 1.0. The rest keep descending similarity order among
// books that pass the mood filter.
func (e *Engine) EnhancedRecommend(ctx context.Context, req EnhancedRequest) []Recommendation {
	count := e.config.clamp(req.Count, e.config.EnhancedDefaultCount)
	mood, err := ParseMood(string(req.Mood))
	if err != nil {
		mood = MoodNone
	}

	out := make([]Recommendation, 0, count)
	seqID := 0

	if id, ok := DetectSequential(e.catalog, req.UserID, req.BookID, req.History); ok && id != req.BookID {
		if book, ok := e.catalog.BookByID(id); ok {
			if series, ok := book.Series(); ok {
				rec := newRecommendation(book, sequentialSimilarity)
				rec.Reason = fmt.Sprintf("Next in '%s' series", series.Name)
				rec.IsSequential = true
				out = append(out, rec)
				seqID = id
			}
		}
	}

	candidates := FilterByMood(e.catalog, e.similar(ctx, req.BookID, count*e.config.Overshoot), mood)

	reason := similarReason
	if mood != MoodNone {
		reason = fmt.Sprintf("%s (%s)", similarReason, mood.Label())
	}

	for _, rec := range candidates {
		if len(out) >= count {
			break
		}
		if seqID != 0 && rec.BookID == seqID {
			continue
		}
		rec.Reason = reason
		rec.IsSequential = false
		out = append(out, rec)
	}

	e.logger.Debug().
		Ctx(ctx).
		Int("user_id", req.UserID).
		Int("book_id", req.BookID).
		Str("mood", mood.String()).
		Bool("sequential", seqID != 0).
		Int("returned", len(out)).
		Msg("computed enhanced recommendations")

	return out
}
