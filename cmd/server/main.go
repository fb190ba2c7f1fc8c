// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/shelfwise/internal/api"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/readinglist"
	"github.com/tomtom215/shelfwise/internal/supervisor"
	"github.com/tomtom215/shelfwise/internal/supervisor/services"
)

// @title Shelfwise API
// @version 1.0
// @description Book recommendations from item-based collaborative filtering,
// @description with next-in-series picks and mood filtering.
// @description
// @description All responses use the envelope {status, data, metadata, error}.
// @description Errors carry a code such as VALIDATION_ERROR, BOOK_NOT_FOUND,
// @description NOT_FOUND, RATE_LIMIT_EXCEEDED or STORE_UNAVAILABLE.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/shelfwise/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and service status
//
// @tag.name Books
// @tag.description Catalog lookups
//
// @tag.name Recommendations
// @tag.description Similar books and enhanced recommendations
//
// @tag.name Reading List
// @tag.description Per-user ratings and reading-list status
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingOptions())
	logging.Info().Str("config", cfg.String()).Msg("Starting Shelfwise with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Shelfwise stopped with error")
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}

	logging.Info().Msg("Application stopped gracefully")
}

// application holds the wired components of a running server.
type application struct {
	tree   *supervisor.SupervisorTree
	server *http.Server
	store  *readinglist.ResilientStore
}

// newApplication wires catalog, engine, store, router and supervisor tree.
// The caller owns app.store and must Close it after the tree stops.
func newApplication(cfg *config.Config) (*application, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}

	cat, engine, err := initRecommend(cfg, logging.WithComponent("recommend"))
	if err != nil {
		return nil, err
	}

	store, err := initStore(cfg, tree)
	if err != nil {
		return nil, err
	}

	handler, err := api.NewHandler(cat, engine, store)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create API handler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, &cfg.Security).SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	return &application{tree: tree, server: server, store: store}, nil
}

// run serves until ctx is canceled, then closes the store.
func run(ctx context.Context, cfg *config.Config) error {
	app, err := newApplication(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing reading-list store")
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	serveErr := app.tree.Serve(ctx)

	unstopped, _ := app.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}
	return nil
}
