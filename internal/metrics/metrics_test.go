// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getGaugeValue extracts the value from a Prometheus gauge
func getGaugeValue(gauge prometheus.Gauge) float64 {
	var m io_prometheus_client.Metric
	if err := gauge.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/books", "200"))

	RecordAPIRequest("GET", "/api/v1/books", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/books", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := getGaugeValue(APIActiveRequests)

	TrackActiveRequest(true)
	if got := getGaugeValue(APIActiveRequests); got != before+1 {
		t.Errorf("after inc: api_active_requests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := getGaugeValue(APIActiveRequests); got != before {
		t.Errorf("after dec: api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		mood      string
		wantLabel string
	}{
		{name: "similar without mood", kind: "similar", mood: "", wantLabel: "none"},
		{name: "enhanced with mood", kind: "enhanced", mood: "fantasy", wantLabel: "fantasy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RecommendationRequests.WithLabelValues(tt.kind, tt.wantLabel)
			before := testutil.ToFloat64(counter)

			RecordRecommendation(tt.kind, tt.mood, 3, time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("recommendation_requests_total{%s,%s} = %v, want %v", tt.kind, tt.wantLabel, got, before+1)
			}
		})
	}
}

func TestRecordStoreOperation(t *testing.T) {
	errCounter := StoreOperationErrors.WithLabelValues("put_rating")
	before := testutil.ToFloat64(errCounter)

	RecordStoreOperation("put_rating", time.Millisecond, nil)
	if got := testutil.ToFloat64(errCounter); got != before {
		t.Errorf("success incremented errors to %v", got)
	}

	RecordStoreOperation("put_rating", time.Millisecond, errors.New("disk full"))
	if got := testutil.ToFloat64(errCounter); got != before+1 {
		t.Errorf("store_operation_errors_total = %v, want %v", got, before+1)
	}
}

func TestConcurrentRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				RecordAPIRequest("POST", "/api/v1/recommendations", "200", time.Millisecond)
				RecordRecommendation("enhanced", "none", 5, time.Microsecond)
				RecordStoreOperation("list", time.Microsecond, nil)
			}
		}()
	}
	wg.Wait()
}

func TestMetricsLint(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/health", "200", time.Millisecond)
	RecordRecommendation("similar", "none", 1, time.Millisecond)
	RecordStoreOperation("get_rating", time.Millisecond, nil)
	CircuitBreakerState.WithLabelValues("lint").Set(0)
	CircuitBreakerRequests.WithLabelValues("lint", "success").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues("lint").Set(0)
	CircuitBreakerTransitions.WithLabelValues("lint", "closed", "open").Inc()
	SequentialPicks.Inc()
	APIRateLimitHits.Inc()

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s: %s", p.Metric, p.Text)
	}
}
