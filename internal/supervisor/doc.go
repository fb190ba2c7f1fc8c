// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package supervisor provides process supervision for Shelfwise using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("shelfwise")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (if STORE_GC_INTERVAL > 0 and the store is on disk)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted. When failures exceed
FailureThreshold (decaying at FailureDecay per second) the supervisor waits
FailureBackoff before trying again.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

# Logging

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog with a *slog.Logger, normally the zerolog bridge from
internal/logging.
*/
package supervisor
