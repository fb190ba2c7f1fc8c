// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultCount != 3 {
		t.Errorf("DefaultCount = %d, want 3", cfg.DefaultCount)
	}
	if cfg.EnhancedDefaultCount != 5 {
		t.Errorf("EnhancedDefaultCount = %d, want 5", cfg.EnhancedDefaultCount)
	}
	if cfg.Overshoot != 2 {
		t.Errorf("Overshoot = %d, want 2", cfg.Overshoot)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{name: "default config is valid", modify: func(*Config) {}},
		{name: "zero default count", modify: func(c *Config) { c.DefaultCount = 0 }, wantError: true},
		{name: "negative enhanced count", modify: func(c *Config) { c.EnhancedDefaultCount = -1 }, wantError: true},
		{name: "max below default", modify: func(c *Config) { c.MaxCount = 2 }, wantError: true},
		{name: "max equal to enhanced default", modify: func(c *Config) { c.MaxCount = 5 }},
		{name: "zero overshoot", modify: func(c *Config) { c.Overshoot = 0 }, wantError: true},
		{name: "overshoot of one", modify: func(c *Config) { c.Overshoot = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()

	clone.DefaultCount = 10
	if orig.DefaultCount != 3 {
		t.Errorf("modifying clone changed original DefaultCount to %d", orig.DefaultCount)
	}
}

func TestConfig_clamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCount = 8

	tests := []struct {
		count, def, want int
	}{
		{count: 0, def: 3, want: 3},
		{count: -4, def: 5, want: 5},
		{count: 4, def: 3, want: 4},
		{count: 100, def: 3, want: 8},
	}

	for _, tt := range tests {
		if got := cfg.clamp(tt.count, tt.def); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.count, tt.def, got, tt.want)
		}
	}
}
