// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package logging provides centralized structured logging on top of zerolog.

A global logger is configured once at startup and then used through
package-level helpers:

	logging.Init(logging.Config{Level: "debug", Format: "console"})
	logging.Info().Str("addr", addr).Msg("HTTP server listening")
	logging.Err(err).Int("user_id", uid).Msg("Failed to load reading list")

# Request Context

The API layer stores request and correlation IDs on the request context.
Ctx returns a logger carrying both:

	logging.Ctx(r.Context()).Debug().Int("book_id", id).Msg("Recommending")

# Components

Long-lived parts of the service tag their output with a component field:

	logger := logging.WithComponent("recommend")

# slog Bridge

NewSlogLogger adapts zerolog for libraries that accept *slog.Logger, such as
the sutureslog event hook used by the supervisor tree.

# Thread Safety

The global logger is guarded by a RWMutex; all helpers are safe for
concurrent use. zerolog.Logger values are immutable and may be shared.
*/
package logging
