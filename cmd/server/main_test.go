// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			Host:            "127.0.0.1",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 2 * time.Second,
			Environment:     "development",
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		Store: config.StoreConfig{
			InMemory: true,
			Breaker: config.BreakerConfig{
				MaxRequests:  1,
				Interval:     time.Minute,
				Timeout:      time.Second,
				MinRequests:  5,
				FailureRatio: 0.5,
			},
		},
		Recommend: config.RecommendConfig{DefaultCount: 3, EnhancedDefaultCount: 5, MaxCount: 50, Overshoot: 2},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
			MaxBodyBytes:      1 << 20,
		},
	}
}

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestInitRecommend_BuiltIn(t *testing.T) {
	cat, engine, err := initRecommend(testConfig(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}
	if cat.Len() != 14 {
		t.Errorf("catalog books = %d, want 14", cat.Len())
	}
	if got := engine.Recommend(context.Background(), 101, 0); len(got) != 3 {
		t.Errorf("Recommend(101, default) = %d results, want 3", len(got))
	}
}

func TestInitRecommend_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := `books:
  - id: 1
    title: Mistborn
    author: Brandon Sanderson
    genre: Fantasy
    genres: Fantasy, Epic
    page_count: 541
    series: Mistborn (1)
  - id: 2
    title: The Well of Ascension
    author: Brandon Sanderson
    genre: Fantasy
    genres: Fantasy, Epic
    page_count: 590
    series: Mistborn (2)
ratings:
  - {user_id: 1, book_id: 1, rating: 5}
  - {user_id: 1, book_id: 2, rating: 4}
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := testConfig(t)
	cfg.Catalog.SeedPath = path
	cat, _, err := initRecommend(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog books = %d, want 2", cat.Len())
	}

	cfg.Catalog.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")
	if _, _, err := initRecommend(cfg, zerolog.Nop()); err == nil {
		t.Error("initRecommend() with missing seed file: error = nil")
	}
}

func TestNewApplication_ServesAPI(t *testing.T) {
	app, err := newApplication(testConfig(t))
	if err != nil {
		t.Fatalf("newApplication() error = %v", err)
	}
	defer app.store.Close()

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"books":14`) {
		t.Errorf("health body = %s", rec.Body.String())
	}
	if app.server.Addr != "127.0.0.1:8080" {
		t.Errorf("server addr = %q", app.server.Addr)
	}
}

func TestNewApplication_StoreOnDisk(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.InMemory = false
	cfg.Store.Path = t.TempDir()
	cfg.Store.GCInterval = time.Hour
	cfg.Store.GCDiscardRatio = 0.5

	app, err := newApplication(cfg)
	if err != nil {
		t.Fatalf("newApplication() error = %v", err)
	}
	if err := app.store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRun_ServesUntilCanceled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	url := "http://" + net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)) + "/api/v1/books/106"
	var (
		resp *http.Response
		err  error
	)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server never answered: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "A Game of Thrones") {
		t.Errorf("GET book: status %d, body %s", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("run() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
