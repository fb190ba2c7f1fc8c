// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// initRecommend loads the catalog (built-in seed unless CATALOG_SEED_PATH
// is set) and builds the engine over it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, *recommend.Engine, error) {
	cat := catalog.Default()
	source := "built-in"
	if path := cfg.Catalog.SeedPath; path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog seed: %w", err)
		}
		cat = loaded
		source = path
	}

	engine, err := recommend.NewEngine(cat, cfg.EngineConfig(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Str("source", source).
		Int("books", cat.Len()).
		Int("ratings", len(cat.Ratings())).
		Int("default_count", cfg.Recommend.DefaultCount).
		Int("overshoot", cfg.Recommend.Overshoot).
		Msg("Recommendation engine initialized")

	return cat, engine, nil
}
