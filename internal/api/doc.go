// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package api exposes the recommendation engine and the reading-list store
over HTTP using the chi router.

# Endpoints

	GET    /api/v1/health
	GET    /api/v1/books
	GET    /api/v1/books/{bookID}
	GET    /api/v1/books/{bookID}/similar?k=
	POST   /api/v1/recommendations
	GET    /api/v1/users/{userID}/ratings/{bookID}
	PUT    /api/v1/users/{userID}/ratings/{bookID}
	GET    /api/v1/users/{userID}/reading-list
	PUT    /api/v1/users/{userID}/reading-list/{bookID}
	DELETE /api/v1/users/{userID}/reading-list/{bookID}
	GET    /metrics

# Responses

Every endpoint except DELETE (204) and /metrics returns a
models.APIResponse envelope encoded with goccy/go-json. Errors map as:

	400 VALIDATION_ERROR    malformed path, query or body
	404 BOOK_NOT_FOUND      book id not in the catalog
	404 NOT_FOUND           no stored rating or reading-list entry
	429 RATE_LIMIT_EXCEEDED per-IP limit from go-chi/httprate
	503 STORE_UNAVAILABLE   store circuit breaker open
	500 STORE_ERROR         any other store failure

# Middleware

Global: request ID, RealIP, access log, Recoverer, CORS. Under /api/v1:
rate limit, body size cap, security headers, Prometheus request metrics.
*/
package api
