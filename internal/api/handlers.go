// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"errors"
	"time"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/recommend"
	"github.com/tomtom215/shelfwise/internal/readinglist"
)

// Version is reported by the health endpoint.
var Version = "dev"

// BreakerStater is implemented by stores that sit behind a circuit breaker.
type BreakerStater interface {
	State() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and catalog counts
//   - handlers_books.go: catalog and similar-books endpoints
//   - handlers_recommend.go: enhanced recommendations
//   - handlers_readinglist.go: ratings and reading-list endpoints
type Handler struct {
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	store     readinglist.Store
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// The engine and store are independent: store failures only affect the
// endpoints that read or write the store, and history derivation for
// recommendations.
//
//	handler, err := api.NewHandler(cat, engine, store)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(cat *catalog.Catalog, engine *recommend.Engine, store readinglist.Store) (*Handler, error) {
	switch {
	case cat == nil:
		return nil, errors.New("catalog is required")
	case engine == nil:
		return nil, errors.New("recommendation engine is required")
	case store == nil:
		return nil, errors.New("reading-list store is required")
	}

	return &Handler{
		catalog:   cat,
		engine:    engine,
		store:     store,
		startTime: time.Now(),
	}, nil
}

// storeState reports the store breaker state, or "closed" for stores
// without a breaker.
func (h *Handler) storeState() string {
	if s, ok := h.store.(BreakerStater); ok {
		return s.State()
	}
	return "closed"
}
