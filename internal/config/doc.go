// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package config provides layered configuration for Shelfwise using koanf.

# Configuration Sources

Sources are applied in order, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, ./config.yaml, or /etc/shelfwise/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 10s)
  - ENVIRONMENT: development or production

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller location (default: false)

Reading-list store:
  - STORE_PATH: Badger directory (default: /data/shelfwise)
  - STORE_IN_MEMORY: Keep data in memory only (default: false)
  - STORE_SYNC_WRITES: fsync each write (default: false)
  - STORE_GC_INTERVAL: Value-log GC period, 0 disables (default: 10m)
  - STORE_BREAKER_MIN_REQUESTS, STORE_BREAKER_FAILURE_RATIO,
    STORE_BREAKER_TIMEOUT: Circuit breaker tuning

Recommendations:
  - RECOMMEND_DEFAULT_COUNT (3), RECOMMEND_ENHANCED_DEFAULT_COUNT (5),
    RECOMMEND_MAX_COUNT (50), RECOMMEND_OVERSHOOT (2)
  - CATALOG_SEED_PATH: YAML seed file; empty uses the built-in catalog

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - MAX_BODY_BYTES: Request body limit (default: 1MiB)

# Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.LoggingOptions())
*/
package config
