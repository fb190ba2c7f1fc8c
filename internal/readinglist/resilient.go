// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package readinglist

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
)

// BreakerConfig tunes the circuit breaker around a Store.
type BreakerConfig struct {
	// Name labels breaker metrics and logs.
	Name string

	// MaxRequests is the number of trial calls allowed while half-open.
	MaxRequests uint32

	// Interval resets failure counts while closed.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// MinRequests is the number of calls needed before the breaker may trip.
	MinRequests uint32

	// FailureRatio trips the breaker once reached.
	FailureRatio float64
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "reading-list-store",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// ResilientStore wraps a Store with circuit breaker protection.
// Missing or invalid records are answers, not failures, and never trip it.
type ResilientStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewResilientStore wraps store with a circuit breaker.
func NewResilientStore(store Store, cfg BreakerConfig) *ResilientStore {
	name := cfg.Name
	if name == "" {
		name = DefaultBreakerConfig().Name
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrInvalidRecord) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &ResilientStore{
		store: store,
		cb:    cb,
		name:  name,
	}
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (r *ResilientStore) State() string {
	return stateToString(r.cb.State())
}

// execute runs fn through the breaker. Rejections become ErrUnavailable.
func (r *ResilientStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := r.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", r.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidRecord) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
			return nil, err
		}

		metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
		counts := r.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(0)

	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// PutRating stores a rating with circuit breaker protection.
func (r *ResilientStore) PutRating(ctx context.Context, rec RatingRecord) error {
	_, err := r.execute(func() (interface{}, error) {
		return nil, r.store.PutRating(ctx, rec)
	})
	return err
}

// GetRating retrieves a rating with circuit breaker protection.
func (r *ResilientStore) GetRating(ctx context.Context, userID, bookID int) (RatingRecord, error) {
	return castResult[RatingRecord](r.execute(func() (interface{}, error) {
		return r.store.GetRating(ctx, userID, bookID)
	}))
}

// SetStatus stores a reading-list status with circuit breaker protection.
func (r *ResilientStore) SetStatus(ctx context.Context, userID, bookID int, status Status) error {
	_, err := r.execute(func() (interface{}, error) {
		return nil, r.store.SetStatus(ctx, userID, bookID, status)
	})
	return err
}

// GetStatus retrieves a reading-list entry with circuit breaker protection.
func (r *ResilientStore) GetStatus(ctx context.Context, userID, bookID int) (ReadingEntry, error) {
	return castResult[ReadingEntry](r.execute(func() (interface{}, error) {
		return r.store.GetStatus(ctx, userID, bookID)
	}))
}

// RemoveStatus removes a reading-list entry with circuit breaker protection.
func (r *ResilientStore) RemoveStatus(ctx context.Context, userID, bookID int) error {
	_, err := r.execute(func() (interface{}, error) {
		return nil, r.store.RemoveStatus(ctx, userID, bookID)
	})
	return err
}

// List returns a user's reading list with circuit breaker protection.
func (r *ResilientStore) List(ctx context.Context, userID int) ([]ReadingEntry, error) {
	return castResult[[]ReadingEntry](r.execute(func() (interface{}, error) {
		return r.store.List(ctx, userID)
	}))
}

// Close closes the wrapped store. It bypasses the breaker.
func (r *ResilientStore) Close() error {
	return r.store.Close()
}
