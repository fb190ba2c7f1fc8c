// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/readinglist"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StoreConfig holds reading-list store settings.
type StoreConfig struct {
	Path       string `koanf:"path"`
	InMemory   bool   `koanf:"in_memory"` // No persistence; ratings vanish on restart
	SyncWrites bool   `koanf:"sync_writes"`

	// GCInterval is how often value-log GC runs. Zero disables it.
	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds the circuit breaker settings for the store.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig holds recommendation engine limits.
type RecommendConfig struct {
	DefaultCount         int `koanf:"default_count"`
	EnhancedDefaultCount int `koanf:"enhanced_default_count"`
	MaxCount             int `koanf:"max_count"`
	Overshoot            int `koanf:"overshoot"`
}

// CatalogConfig selects the catalog seed.
type CatalogConfig struct {
	// SeedPath is a YAML seed file. Empty uses the built-in catalog.
	SeedPath string `koanf:"seed_path"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
		Output: os.Stderr,
	}
}

// StoreOptions converts the store section for readinglist.OpenBadgerStore.
func (c *Config) StoreOptions() readinglist.Options {
	return readinglist.Options{
		Path:       c.Store.Path,
		InMemory:   c.Store.InMemory,
		SyncWrites: c.Store.SyncWrites,
	}
}

// BreakerOptions converts the breaker section for readinglist.NewResilientStore.
func (c *Config) BreakerOptions() readinglist.BreakerConfig {
	cfg := readinglist.DefaultBreakerConfig()
	cfg.MaxRequests = c.Store.Breaker.MaxRequests
	cfg.Interval = c.Store.Breaker.Interval
	cfg.Timeout = c.Store.Breaker.Timeout
	cfg.MinRequests = c.Store.Breaker.MinRequests
	cfg.FailureRatio = c.Store.Breaker.FailureRatio
	return cfg
}

// EngineConfig converts the recommend section for recommend.NewEngine.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		DefaultCount:         c.Recommend.DefaultCount,
		EnhancedDefaultCount: c.Recommend.EnhancedDefaultCount,
		MaxCount:             c.Recommend.MaxCount,
		Overshoot:            c.Recommend.Overshoot,
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("addr=%s store=%s in_memory=%t seed=%q env=%s",
		c.Server.Addr(), c.Store.Path, c.Store.InMemory, c.Catalog.SeedPath, c.Server.Environment)
}
