// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package models defines the HTTP request and response shapes of the Shelfwise
API.

  - APIResponse, Metadata, APIError: the envelope every endpoint returns
  - HealthStatus: liveness payload with catalog counts and breaker state
  - RecommendationRequest, RatingRequest, ReadingListRequest, SimilarRequest:
    request bodies and queries, validated with go-playground/validator tags

Domain records live with the packages that own them: catalog.Book,
recommend.Recommendation and readinglist.ReadingEntry are serialized as-is.
*/
package models
