// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package main is the entry point for the Shelfwise server.

Shelfwise recommends books with item-based collaborative filtering over a
seed rating table, puts the next volume of a series first when the reader
has finished the previous one, and narrows results by reading mood.

# Application Architecture

	RootSupervisor ("shelfwise")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (on-disk store with STORE_GC_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Initialization order:

 1. Configuration: koanf v2, defaults then YAML file then environment
 2. Logging: zerolog, JSON or console
 3. Catalog and engine: built-in seed or CATALOG_SEED_PATH
 4. Reading-list store: BadgerDB behind a gobreaker circuit breaker
 5. Supervisor tree and HTTP server

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info              # trace, debug, info, warn, error
	LOG_FORMAT=json             # json or console
	STORE_PATH=/data/shelfwise
	STORE_IN_MEMORY=false
	CATALOG_SEED_PATH=          # YAML with books: and ratings:
	CORS_ORIGINS=https://shelf.example.com
	RATE_LIMIT_REQUESTS=100

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
server with a graceful Shutdown bounded by SERVER_SHUTDOWN_TIMEOUT, then the
store is closed.
*/
package main
