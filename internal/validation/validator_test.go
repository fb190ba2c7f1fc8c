// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type historyItem struct {
	UserID int `json:"user_id"`
	BookID int `json:"book_id" validate:"required,gt=0"`
}

type recommendationRequest struct {
	UserID  int           `json:"user_id" validate:"required,gt=0"`
	BookID  int           `json:"book_id" validate:"required,gt=0"`
	Mood    string        `json:"mood" validate:"mood"`
	K       int           `json:"k" validate:"gte=0,lte=50"`
	Status  string        `json:"status" validate:"omitempty,oneof=want_to_read currently_reading finished"`
	Review  string        `json:"review,omitempty" validate:"max=10"`
	History []historyItem `json:"history" validate:"dive"`
	Legacy  int           `validate:"lte=3"`
}

func validRequest() recommendationRequest {
	return recommendationRequest{UserID: 1, BookID: 106, Mood: "fantasy", K: 5}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*recommendationRequest)
	}{
		{name: "all valid fields", modify: func(*recommendationRequest) {}},
		{name: "empty mood", modify: func(r *recommendationRequest) { r.Mood = "" }},
		{name: "mood none", modify: func(r *recommendationRequest) { r.Mood = "none" }},
		{name: "zero k", modify: func(r *recommendationRequest) { r.K = 0 }},
		{name: "known status", modify: func(r *recommendationRequest) { r.Status = "finished" }},
		{name: "history entries", modify: func(r *recommendationRequest) {
			r.History = []historyItem{{UserID: 1, BookID: 106}, {UserID: 1, BookID: 112}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*recommendationRequest)
		wantField string
		wantTag   string
	}{
		{name: "missing user", modify: func(r *recommendationRequest) { r.UserID = 0 }, wantField: "user_id", wantTag: "required"},
		{name: "negative book", modify: func(r *recommendationRequest) { r.BookID = -3 }, wantField: "book_id", wantTag: "gt"},
		{name: "unknown mood", modify: func(r *recommendationRequest) { r.Mood = "horror" }, wantField: "mood", wantTag: "mood"},
		{name: "k too large", modify: func(r *recommendationRequest) { r.K = 51 }, wantField: "k", wantTag: "lte"},
		{name: "unknown status", modify: func(r *recommendationRequest) { r.Status = "abandoned" }, wantField: "status", wantTag: "oneof"},
		{name: "review too long", modify: func(r *recommendationRequest) { r.Review = "far too long" }, wantField: "review", wantTag: "max"},
		{name: "history entry without book", modify: func(r *recommendationRequest) {
			r.History = []historyItem{{UserID: 1}}
		}, wantField: "book_id", wantTag: "required"},
		{name: "field without json tag", modify: func(r *recommendationRequest) { r.Legacy = 4 }, wantField: "Legacy", wantTag: "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() returned nil, want error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := validRequest()
	req.K = 99

	apiErr := ValidateStruct(&req).ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "k must be less than or equal to 50" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "k" {
		t.Errorf("Details[field] = %v, want k", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	req := recommendationRequest{Mood: "horror"}

	apiErr := ValidateStruct(&req).ToAPIError()
	for _, field := range []string{"user_id", "book_id", "mood"} {
		if !strings.Contains(apiErr.Message, field) {
			t.Errorf("Message %q does not mention %s", apiErr.Message, field)
		}
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Errorf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q, want Validation failed", apiErr.Message)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*recommendationRequest)
		message string
	}{
		{name: "required", modify: func(r *recommendationRequest) { r.UserID = 0 }, message: "user_id is required"},
		{name: "gt", modify: func(r *recommendationRequest) { r.BookID = -1 }, message: "book_id must be greater than 0"},
		{name: "oneof", modify: func(r *recommendationRequest) { r.Status = "x" }, message: "status must be one of: want_to_read currently_reading finished"},
		{name: "string max", modify: func(r *recommendationRequest) { r.Review = "01234567890" }, message: "review must be at most 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() returned nil")
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}
