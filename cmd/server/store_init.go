// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"fmt"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/readinglist"
	"github.com/tomtom215/shelfwise/internal/supervisor"
	"github.com/tomtom215/shelfwise/internal/supervisor/services"
)

// initStore opens the Badger reading-list store behind a circuit breaker
// and registers value-log GC with the data layer when the store is on disk.
func initStore(cfg *config.Config, tree *supervisor.SupervisorTree) (*readinglist.ResilientStore, error) {
	badgerStore, err := readinglist.OpenBadgerStore(cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("open reading-list store: %w", err)
	}

	if !cfg.Store.InMemory && cfg.Store.GCInterval > 0 {
		tree.AddDataService(services.NewStoreGCService(badgerStore, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
		logging.Info().
			Dur("interval", cfg.Store.GCInterval).
			Float64("discard_ratio", cfg.Store.GCDiscardRatio).
			Msg("Store GC service added to supervisor tree")
	}

	return readinglist.NewResilientStore(badgerStore, cfg.BreakerOptions()), nil
}
