// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package middleware provides HTTP middleware for the Shelfwise API.

All middleware uses the standard func(http.Handler) http.Handler shape and
plugs into chi's r.Use:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

RequestID must run first; AccessLog reads the IDs it stores through
logging.Ctx. PrometheusMetrics labels requests by chi route pattern, so it
must be mounted on a chi router.
*/
package middleware
