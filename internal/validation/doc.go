// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared. It reports
// fields by their json name and adds a "mood" tag that accepts the empty
// string or any recommendation mood identifier.
//
// # Usage
//
//	type RatingRequest struct {
//	    Rating int    `json:"rating" validate:"gte=1,lte=5"`
//	    Review string `json:"review" validate:"max=2000"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
