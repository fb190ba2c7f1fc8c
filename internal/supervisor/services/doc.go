// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package services provides suture.Service wrappers for Shelfwise components.

Each wrapper implements suture's Serve(ctx) error and returns when the
context is canceled:

  - HTTPServerService: ListenAndServe with graceful Shutdown (api layer)
  - StoreGCService: periodic Badger value-log GC (data layer)

Returning an error counts as a failure; suture restarts the service with
the tree's backoff settings. Each wrapper implements fmt.Stringer so it is
named in supervisor events.
*/
package services
