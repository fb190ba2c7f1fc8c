// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"context"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(catalog.Default(), DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e, err := NewEngine(catalog.Default(), nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if e.Config().DefaultCount != 3 {
			t.Errorf("DefaultCount = %d, want 3", e.Config().DefaultCount)
		}
	})

	t.Run("nil catalog rejected", func(t *testing.T) {
		if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
			t.Error("NewEngine(nil catalog) error = nil, want error")
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Overshoot = 0
		if _, err := NewEngine(catalog.Default(), cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine(invalid config) error = nil, want error")
		}
	})

	t.Run("config is copied", func(t *testing.T) {
		cfg := DefaultConfig()
		e, err := NewEngine(catalog.Default(), cfg, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		cfg.DefaultCount = 40
		if e.Config().DefaultCount != 3 {
			t.Errorf("engine config changed with caller's copy")
		}
	})
}

func TestEngine_Recommend(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("gatsby top three", func(t *testing.T) {
		recs := e.Recommend(ctx, 101, 3)
		if got := recIDs(recs); !slices.Equal(got, []int{105, 106, 109}) {
			t.Fatalf("Recommend(101, 3) = %v, want [105 106 109]", got)
		}

		first := recs[0]
		if first.Title != "The Catcher in the Rye" || first.Author != "J.D. Salinger" || first.Genre != "Coming-of-age" {
			t.Errorf("metadata = %+v, want catalog fields for 105", first)
		}
		if math.Abs(first.Similarity-0.6155) > 1e-4 {
			t.Errorf("similarity = %.4f, want 0.6155", first.Similarity)
		}
		for _, r := range recs {
			if r.Reason != "" || r.IsSequential {
				t.Errorf("plain recommendation %d carries reason %q / sequential %v", r.BookID, r.Reason, r.IsSequential)
			}
		}
	})

	t.Run("zero count uses default", func(t *testing.T) {
		if got := len(e.Recommend(ctx, 101, 0)); got != 3 {
			t.Errorf("len(Recommend(101, 0)) = %d, want 3", got)
		}
	})

	t.Run("count larger than catalog", func(t *testing.T) {
		if got := len(e.Recommend(ctx, 101, 40)); got != 11 {
			t.Errorf("len(Recommend(101, 40)) = %d, want 11 rated neighbors", got)
		}
	})

	t.Run("unrated book", func(t *testing.T) {
		if got := e.Recommend(ctx, 114, 3); len(got) != 0 {
			t.Errorf("Recommend(114) = %v, want empty", recIDs(got))
		}
	})

	t.Run("unknown book", func(t *testing.T) {
		if got := e.Recommend(ctx, 4242, 3); len(got) != 0 {
			t.Errorf("Recommend(4242) = %v, want empty", recIDs(got))
		}
	})
}

func TestEngine_EnhancedRecommend(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	readerHistory := history(1, 106, 112, 110)

	tests := []struct {
		name       string
		req        EnhancedRequest
		want       []int
		wantReason string
	}{
		{
			name:       "sequential first then similar",
			req:        EnhancedRequest{UserID: 1, BookID: 106, History: readerHistory, Mood: MoodNone, Count: 5},
			want:       []int{107, 111, 101, 102, 103},
			wantReason: "Similar book",
		},
		{
			name:       "fantasy mood",
			req:        EnhancedRequest{UserID: 1, BookID: 106, History: readerHistory, Mood: MoodFantasy, Count: 5},
			want:       []int{107, 108},
			wantReason: "Similar book (fantasy)",
		},
		{
			name:       "zero count uses enhanced default",
			req:        EnhancedRequest{UserID: 1, BookID: 106, History: readerHistory},
			want:       []int{107, 111, 101, 102, 103},
			wantReason: "Similar book",
		},
		{
			name:       "self suggestion is dropped",
			req:        EnhancedRequest{UserID: 1, BookID: 113, History: readerHistory, Count: 5},
			want:       []int{},
		},
		{
			name:       "next volume with similar books",
			req:        EnhancedRequest{UserID: 1, BookID: 112, History: readerHistory, Count: 3},
			want:       []int{113, 109, 108},
			wantReason: "Similar book",
		},
		{
			name:       "no history means no sequential pick",
			req:        EnhancedRequest{UserID: 1, BookID: 112, Count: 2},
			want:       []int{109, 108},
			wantReason: "Similar book",
		},
		{
			name:       "light read reason label",
			req:        EnhancedRequest{UserID: 9, BookID: 110, Mood: MoodLightRead, Count: 3},
			want:       []int{103, 101},
			wantReason: "Similar book (light read)",
		},
		{
			name:       "unknown mood treated as none",
			req:        EnhancedRequest{UserID: 9, BookID: 110, Mood: Mood("horror"), Count: 2},
			want:       []int{111, 104},
			wantReason: "Similar book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := e.EnhancedRecommend(ctx, tt.req)
			if got := recIDs(recs); !slices.Equal(got, tt.want) {
				t.Fatalf("EnhancedRecommend() = %v, want %v", got, tt.want)
			}
			for _, r := range recs {
				if r.IsSequential {
					continue
				}
				if r.Reason != tt.wantReason {
					t.Errorf("book %d reason = %q, want %q", r.BookID, r.Reason, tt.wantReason)
				}
			}
		})
	}
}

func TestEngine_EnhancedRecommend_SequentialPick(t *testing.T) {
	e := newTestEngine(t)

	recs := e.EnhancedRecommend(context.Background(), EnhancedRequest{
		UserID:  1,
		BookID:  106,
		History: history(1, 106),
		Count:   5,
	})
	if len(recs) == 0 {
		t.Fatal("EnhancedRecommend() returned nothing")
	}

	seq := recs[0]
	if !seq.IsSequential {
		t.Error("first recommendation is not sequential")
	}
	if seq.Similarity != 1.0 {
		t.Errorf("sequential similarity = %v, want 1.0", seq.Similarity)
	}
	if seq.Reason != "Next in 'A Song of Ice and Fire' series" {
		t.Errorf("sequential reason = %q", seq.Reason)
	}

	for _, r := range recs[1:] {
		if r.IsSequential {
			t.Errorf("book %d marked sequential after the first slot", r.BookID)
		}
		if r.BookID == seq.BookID {
			t.Errorf("sequential book %d duplicated", r.BookID)
		}
	}
}

func TestEngine_EnhancedRecommend_CountOne(t *testing.T) {
	e := newTestEngine(t)

	recs := e.EnhancedRecommend(context.Background(), EnhancedRequest{
		UserID:  1,
		BookID:  106,
		History: history(1, 106),
		Count:   1,
	})
	if got := recIDs(recs); !slices.Equal(got, []int{107}) {
		t.Errorf("EnhancedRecommend(count=1) = %v, want [107]", got)
	}
}

func TestEngine_LookupBooks(t *testing.T) {
	e := newTestEngine(t)

	b, ok := e.BookByID(111)
	if !ok || b.Title != "Dune" {
		t.Errorf("BookByID(111) = (%+v, %v), want Dune", b, ok)
	}
	if _, ok := e.BookByID(1); ok {
		t.Error("BookByID(1) found, want missing")
	}
	if got := len(e.Books()); got != 14 {
		t.Errorf("len(Books()) = %d, want 14", got)
	}
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = e.Recommend(ctx, 101, 3)
				_ = e.EnhancedRecommend(ctx, EnhancedRequest{UserID: 1, BookID: 106, History: history(1, 106)})
			}
		}()
	}
	wg.Wait()
}

func TestEngine_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	req := EnhancedRequest{UserID: 1, BookID: 106, History: history(1, 106, 112, 110), Count: 5}

	first := e.EnhancedRecommend(ctx, req)
	for i := 0; i < 10; i++ {
		if got := e.EnhancedRecommend(ctx, req); !slices.Equal(got, first) {
			t.Fatalf("run %d = %v, want %v", i, recIDs(got), recIDs(first))
		}
	}

	similar := e.Recommend(ctx, 106, 11)
	for i := 0; i < 10; i++ {
		if got := e.Recommend(ctx, 106, 11); !slices.Equal(got, similar) {
			t.Fatalf("Recommend run %d = %v, want %v", i, recIDs(got), recIDs(similar))
		}
	}
}
