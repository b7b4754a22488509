// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package recommend

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/geo"
)

func square(t *testing.T, minX, minY, maxX, maxY float64) *geo.Area {
	t.Helper()
	a, err := geo.NewArea(orb.Polygon{{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}})
	if err != nil {
		t.Fatalf("NewArea: %v", err)
	}
	return a
}

func restaurant(id string, lon, lat float64, score dataset.Score) dataset.Restaurant {
	return dataset.Restaurant{ID: id, Position: orb.Point{lon, lat}, Score: score}
}

func ids(rs []dataset.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func equalIDs(t *testing.T, got []dataset.Restaurant, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	area := square(t, 0, 0, 2, 2)
	input := []dataset.Restaurant{
		restaurant("B", 1.5, 1.5, dataset.ScoreOf(5)),
		restaurant("A", 0.5, 0.5, dataset.ScoreOf(9)),
		restaurant("C", 1, 1, dataset.NotInHotspot()),
		restaurant("D", 8, 8, dataset.ScoreOf(100)),
	}

	got := Recommend(area, input)
	equalIDs(t, got, "A", "B")
}

func TestRecommendEmptyResults(t *testing.T) {
	t.Parallel()

	area := square(t, 0, 0, 2, 2)

	tests := []struct {
		name  string
		input []dataset.Restaurant
	}{
		{"nil input", nil},
		{"nothing reachable", []dataset.Restaurant{restaurant("far", 5, 5, dataset.ScoreOf(1))}},
		{"reachable but unscored", []dataset.Restaurant{restaurant("in", 1, 1, dataset.NotInHotspot())}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Recommend(area, tt.input)
			if got == nil {
				t.Fatal("expected empty, non-nil slice")
			}
			if len(got) != 0 {
				t.Fatalf("expected no results, got %v", ids(got))
			}
		})
	}
}

func TestFilterReachableIncludesBoundary(t *testing.T) {
	t.Parallel()

	area := square(t, 0, 0, 2, 2)
	input := []dataset.Restaurant{
		restaurant("edge", 2, 1, dataset.ScoreOf(1)),
		restaurant("corner", 0, 0, dataset.ScoreOf(1)),
		restaurant("outside", 2.0001, 1, dataset.ScoreOf(1)),
	}

	equalIDs(t, FilterReachable(area, input), "edge", "corner")
}

func TestFilterReachableNilArea(t *testing.T) {
	t.Parallel()

	got := FilterReachable(nil, []dataset.Restaurant{restaurant("a", 0, 0, dataset.ScoreOf(1))})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestFilterInHotspotKeepsZeroScore(t *testing.T) {
	t.Parallel()

	input := []dataset.Restaurant{
		restaurant("zero", 0, 0, dataset.ScoreOf(0)),
		restaurant("absent", 0, 0, dataset.NotInHotspot()),
		restaurant("negative", 0, 0, dataset.ScoreOf(-1)),
	}

	equalIDs(t, FilterInHotspot(input), "zero", "negative")
}

func TestRankByScoreIsStable(t *testing.T) {
	t.Parallel()

	input := []dataset.Restaurant{
		restaurant("p", 0, 0, dataset.ScoreOf(2)),
		restaurant("q", 0, 0, dataset.ScoreOf(7)),
		restaurant("r", 0, 0, dataset.ScoreOf(2)),
		restaurant("s", 0, 0, dataset.ScoreOf(7)),
		restaurant("t", 0, 0, dataset.ScoreOf(2)),
	}

	equalIDs(t, RankByScore(input), "q", "s", "p", "r", "t")
}

func TestRankByScorePutsAbsentLast(t *testing.T) {
	t.Parallel()

	input := []dataset.Restaurant{
		restaurant("none", 0, 0, dataset.NotInHotspot()),
		restaurant("low", 0, 0, dataset.ScoreOf(-3)),
		restaurant("high", 0, 0, dataset.ScoreOf(3)),
	}

	equalIDs(t, RankByScore(input), "high", "low", "none")
}

func TestRecommendDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	area := square(t, 0, 0, 10, 10)
	input := []dataset.Restaurant{
		restaurant("1", 1, 1, dataset.ScoreOf(1)),
		restaurant("2", 2, 2, dataset.ScoreOf(3)),
		restaurant("3", 3, 3, dataset.ScoreOf(2)),
	}
	before := ids(input)

	got := Recommend(area, input)
	equalIDs(t, got, "2", "3", "1")

	got[0].ID = "changed"
	after := ids(input)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input modified: before %v, after %v", before, after)
		}
	}
}
