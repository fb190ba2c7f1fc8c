// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/shelfwise/internal/logging"
)

// GarbageCollector is satisfied by *readinglist.BadgerStore.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// StoreGCService periodically reclaims space in the reading-list store's
// value log.
//
// A GC error is returned so the supervisor counts it as a failure and
// restarts the loop with backoff.
type StoreGCService struct {
	store        GarbageCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewStoreGCService creates the service. interval must be positive.
func NewStoreGCService(store GarbageCollector, interval time.Duration, discardRatio float64) *StoreGCService {
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "store-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(s.discardRatio); err != nil {
				return fmt.Errorf("store value-log GC: %w", err)
			}
			logging.Debug().Dur("duration", time.Since(start)).Msg("Store value-log GC pass complete")
		}
	}
}

// String identifies the service in supervisor logs.
func (s *StoreGCService) String() string {
	return s.name
}
