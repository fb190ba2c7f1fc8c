// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	return entry
}

func TestSlogHandler_Levels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer Init(DefaultConfig())

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug - 4, "trace"},
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
		{slog.LevelError + 4, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewSlogHandler(NewTestLogger(&buf).Level(zerolog.TraceLevel)))

			logger.Log(context.Background(), tt.level, "msg")

			if got := decodeLine(t, &buf)["level"]; got != tt.want {
				t.Errorf("level = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer Init(DefaultConfig())

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled(info) = true for warn-level logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Enabled(error) = false for warn-level logger")
	}
}

func TestSlogHandler_Attrs(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Info("service event",
		slog.String("service", "http-server"),
		slog.Int("restarts", 2),
		slog.Bool("fatal", false),
		slog.Float64("backoff", 1.5),
		slog.Duration("elapsed", time.Second),
		slog.Any("err", errors.New("listener closed")),
	)

	entry := decodeLine(t, &buf)
	if entry["message"] != "service event" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["service"] != "http-server" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["restarts"] != float64(2) {
		t.Errorf("restarts = %v", entry["restarts"])
	}
	if entry["fatal"] != false {
		t.Errorf("fatal = %v", entry["fatal"])
	}
	if entry["backoff"] != 1.5 {
		t.Errorf("backoff = %v", entry["backoff"])
	}
	if _, ok := entry["elapsed"]; !ok {
		t.Error("missing elapsed")
	}
	if entry["err"] != "listener closed" {
		t.Errorf("err = %v", entry["err"])
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf))).
		With("tree", "root").
		WithGroup("event")

	logger.Info("restart", "service", "store-gc", slog.Group("backoff", slog.Int("attempt", 3)))

	entry := decodeLine(t, &buf)
	if entry["event.tree"] != "root" {
		t.Errorf("event.tree = %v (entry %v)", entry["event.tree"], entry)
	}
	if entry["event.service"] != "store-gc" {
		t.Errorf("event.service = %v", entry["event.service"])
	}
	if entry["event.backoff.attempt"] != float64(3) {
		t.Errorf("event.backoff.attempt = %v", entry["event.backoff.attempt"])
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.Nop())
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the receiver")
	}
}

func TestNewSlogLogger(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	NewSlogLogger("supervisor").Warn("service failed")

	entry := decodeLine(t, &buf)
	if entry["component"] != "supervisor" {
		t.Errorf("component = %v, want supervisor", entry["component"])
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
}
