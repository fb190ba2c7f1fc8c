// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "fmt"

// Config contains the engine's operational limits.
type Config struct {
	// DefaultCount is the number of similar books returned by Recommend
	// when the caller passes zero.
	// Default: 3.
	DefaultCount int `json:"default_count"`

	// EnhancedDefaultCount is the number of results returned by
	// EnhancedRecommend when the caller passes zero.
	// Default: 5.
	EnhancedDefaultCount int `json:"enhanced_default_count"`

	// MaxCount caps any requested count.
	// Default: 50.
	MaxCount int `json:"max_count"`

	// Overshoot multiplies the requested count when EnhancedRecommend asks
	// the ranker for candidates, so that enough survive mood filtering.
	// Default: 2.
	Overshoot int `json:"overshoot"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultCount:         3,
		EnhancedDefaultCount: 5,
		MaxCount:             50,
		Overshoot:            2,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultCount < 1 {
		return fmt.Errorf("default_count must be positive, got %d", c.DefaultCount)
	}
	if c.EnhancedDefaultCount < 1 {
		return fmt.Errorf("enhanced_default_count must be positive, got %d", c.EnhancedDefaultCount)
	}
	if c.MaxCount < c.DefaultCount || c.MaxCount < c.EnhancedDefaultCount {
		return fmt.Errorf("max_count must be >= both default counts, got %d", c.MaxCount)
	}
	if c.Overshoot < 1 {
		return fmt.Errorf("overshoot must be >= 1, got %d", c.Overshoot)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// clamp applies a default to non-positive counts and caps the result.
func (c *Config) clamp(count, def int) int {
	if count <= 0 {
		count = def
	}
	if count > c.MaxCount {
		count = c.MaxCount
	}
	return count
}
