// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" or "error". On error, Data is null and Error carries
// the machine-readable code:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z"},
//	  "error": {"code": "BOOK_NOT_FOUND", "message": "Book 999 not found"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`

	// QueryTimeMS is the time spent in the engine or store, in milliseconds.
	QueryTimeMS int64 `json:"query_time_ms,omitempty"`

	// Count is the number of items in a list payload.
	Count *int `json:"count,omitempty"`
}

// APIError is the error body of a failed request.
//
// Codes: VALIDATION_ERROR, BOOK_NOT_FOUND, NOT_FOUND, RATE_LIMIT_EXCEEDED,
// STORE_UNAVAILABLE, STORE_ERROR, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
