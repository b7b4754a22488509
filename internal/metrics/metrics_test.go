// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSamples returns the observation count and sum of a histogram.
func histogramSamples(t *testing.T, o prometheus.Observer) (uint64, float64) {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", o)
	}
	var pb io_prometheus_client.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return pb.GetHistogram().GetSampleCount(), pb.GetHistogram().GetSampleSum()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))

	RecordAPIRequest("GET", "/recommend", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordIsochroneRequest(t *testing.T) {
	c := IsochroneRequestsTotal.WithLabelValues("walking", "upstream_error")
	before := testutil.ToFloat64(c)

	RecordIsochroneRequest("walking", "upstream_error", 120*time.Millisecond)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("isochrone_requests_total = %v, want %v", got, before+1)
	}
}

func TestRecordDatasetLoaded(t *testing.T) {
	RecordDatasetLoaded(3, 40, 12)

	tests := map[string]float64{
		"hotspots":           3,
		"restaurants":        40,
		"scored_restaurants": 12,
	}
	for collection, want := range tests {
		if got := testutil.ToFloat64(DatasetFeatures.WithLabelValues(collection)); got != want {
			t.Errorf("dataset_features{collection=%q} = %v, want %v", collection, got, want)
		}
	}
}

func TestRecordRecommendation(t *testing.T) {
	reachableCount, reachableSum := histogramSamples(t, RecommendationCandidates.WithLabelValues("reachable"))
	rankedCount, rankedSum := histogramSamples(t, RecommendationCandidates.WithLabelValues("ranked"))

	RecordRecommendation(10, 4)

	count, sum := histogramSamples(t, RecommendationCandidates.WithLabelValues("reachable"))
	if count != reachableCount+1 || sum != reachableSum+10 {
		t.Errorf("reachable: count=%d sum=%v, want %d/%v", count, sum, reachableCount+1, reachableSum+10)
	}
	count, sum = histogramSamples(t, RecommendationCandidates.WithLabelValues("ranked"))
	if count != rankedCount+1 || sum != rankedSum+4 {
		t.Errorf("ranked: count=%d sum=%v, want %d/%v", count, sum, rankedCount+1, rankedSum+4)
	}
}

func TestIsochroneDurationObserved(t *testing.T) {
	before, _ := histogramSamples(t, IsochroneRequestDuration.WithLabelValues("driving"))

	RecordIsochroneRequest("driving", "success", 250*time.Millisecond)

	after, _ := histogramSamples(t, IsochroneRequestDuration.WithLabelValues("driving"))
	if after != before+1 {
		t.Errorf("sample count = %d, want %d", after, before+1)
	}
}
