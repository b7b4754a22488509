// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/wheretodine/internal/dataset"
	"github.com/tomtom215/wheretodine/internal/geo"
	"github.com/tomtom215/wheretodine/internal/query"
	"github.com/tomtom215/wheretodine/internal/reachability"
)

// isochroneSquare covers [0,2]x[0,2].
const isochroneSquare = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"contour":15},"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}}]}`

// fakeIsochrone is an httptest upstream with a configurable reply.
type fakeIsochrone struct {
	server *httptest.Server
	calls  atomic.Int32
	last   atomic.Pointer[string]
	status int
	body   string
}

func newFakeIsochrone(t *testing.T, status int, body string) *fakeIsochrone {
	t.Helper()
	f := &fakeIsochrone{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		uri := r.URL.RequestURI()
		f.last.Store(&uri)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

// lastURI returns the path and query of the most recent request.
func (f *fakeIsochrone) lastURI() string {
	if p := f.last.Load(); p != nil {
		return *p
	}
	return ""
}

func testStore(t *testing.T) *dataset.Store {
	t.Helper()
	downtown, err := geo.NewArea(orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})
	if err != nil {
		t.Fatal(err)
	}
	harbour, err := geo.NewArea(orb.Polygon{{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}})
	if err != nil {
		t.Fatal(err)
	}
	return dataset.New(
		[]dataset.Hotspot{
			{ID: "0", Area: downtown, Properties: geojson.Properties{"weight": 0.9}},
			{ID: "1", Area: harbour, Properties: geojson.Properties{"weight": 0.4}},
		},
		[]dataset.Restaurant{
			{ID: "B", Position: orb.Point{1.5, 1.5}, Score: dataset.ScoreOf(5), Properties: geojson.Properties{"name": "B"}},
			{ID: "A", Position: orb.Point{0.5, 0.5}, Score: dataset.ScoreOf(9), Properties: geojson.Properties{"name": "A"}},
			{ID: "C", Position: orb.Point{1, 1}, Score: dataset.NotInHotspot(), Properties: geojson.Properties{"name": "C"}},
			{ID: "D", Position: orb.Point{8, 8}, Score: dataset.ScoreOf(100), Properties: geojson.Properties{"name": "D"}},
		},
		1,
	)
}

// newTestServer wires store, a client for upstream and the router.
// A nil store simulates missing datasets.
func newTestServer(t *testing.T, store query.StoreReader, upstream *fakeIsochrone, mw *ChiMiddleware) http.Handler {
	t.Helper()
	client, err := reachability.NewClient(reachability.Options{
		BaseURL:     upstream.server.URL,
		AccessToken: "pk.test",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	svc := query.New(store, client, query.Options{})
	h := NewHandler(svc, HandlerOptions{Version: "test"})
	return NewRouter(h, mw).SetupChi()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec
}

func decodeFeatureCollection(t *testing.T, rec *httptest.ResponseRecorder) *geojson.FeatureCollection {
	t.Helper()
	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode FeatureCollection: %v\n%s", err, rec.Body.String())
	}
	return fc
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func featureNames(fc *geojson.FeatureCollection) []string {
	names := make([]string, len(fc.Features))
	for i, f := range fc.Features {
		names[i], _ = f.Properties["name"].(string)
	}
	return names
}
