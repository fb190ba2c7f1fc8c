// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/readinglist"
	"github.com/tomtom215/shelfwise/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeBookNotFound     = "BOOK_NOT_FOUND"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeStoreError       = "STORE_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondList is respondSuccess with the item count in metadata.
func respondList(w http.ResponseWriter, data interface{}, count int, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Count:       &count,
		},
	})
}

// respondError sends an error response. A non-nil err is logged, not returned
// to the client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorWithDetails(w, status, code, message, nil, err)
}

func respondErrorWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Error().Str("code", logging.Sanitize(code)).Str("error", logging.Sanitize(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidation sends a 400 with the validator's field details.
func respondValidation(w http.ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondErrorWithDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// respondStoreError maps reading-list store errors to status codes.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, readinglist.ErrNotFound):
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Record not found", nil)
	case errors.Is(err, readinglist.ErrInvalidRecord):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, readinglist.ErrUnavailable):
		w.Header().Set("Retry-After", "30")
		respondError(w, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "Reading-list store is temporarily unavailable", err)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeStoreError, "Reading-list store error", err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// It writes the 400 response and returns false on failure.
func validateRequest(w http.ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		respondValidation(w, verr)
		return false
	}
	return true
}

// decodeJSON reads a request body into dst. Unknown fields are rejected.
// It writes the 400 response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			respondError(w, http.StatusRequestEntityTooLarge, ErrCodeValidation,
				fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit), nil)
		case errors.Is(err, io.EOF):
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "Request body is required", nil)
		default:
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "Invalid JSON body", nil)
		}
		return false
	}
	return true
}

// pathInt parses a positive integer URL parameter. It writes the 400
// response and returns false on failure.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		respondErrorWithDetails(w, http.StatusBadRequest, ErrCodeValidation,
			fmt.Sprintf("%s must be a positive integer", name),
			map[string]interface{}{"field": name, "value": logging.Sanitize(raw)}, nil)
		return 0, false
	}
	return v, true
}

// getIntParam extracts an integer query parameter with a default value.
// The second return value is false when the parameter is present but not
// an integer.
func getIntParam(r *http.Request, key string, defaultValue int) (int, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, true
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, false
	}

	return intValue, true
}
