// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestHotspots(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testStore(t), newFakeIsochrone(t, http.StatusOK, isochroneSquare), nil)

	for _, path := range []string{"/hotspots", "/api/hotspots"} {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := get(t, srv, path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != contentTypeGeoJSON {
				t.Errorf("Content-Type = %q", ct)
			}
			fc := decodeFeatureCollection(t, rec)
			if len(fc.Features) != 2 {
				t.Fatalf("features = %d, want 2", len(fc.Features))
			}
			if w, _ := fc.Features[0].Properties["weight"].(float64); w != 0.9 {
				t.Errorf("first weight = %v, want 0.9", fc.Features[0].Properties["weight"])
			}
			if w, _ := fc.Features[1].Properties["weight"].(float64); w != 0.4 {
				t.Errorf("second weight = %v, want 0.4", fc.Features[1].Properties["weight"])
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	upstream := newFakeIsochrone(t, http.StatusOK, isochroneSquare)
	srv := newTestServer(t, testStore(t), upstream, nil)

	for _, path := range []string{"/recommend", "/api/recommend"} {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := get(t, srv, path+"?lat=1&lon=1&mode=walking&minutes=10")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			names := featureNames(decodeFeatureCollection(t, rec))
			if strings.Join(names, ",") != "A,B" {
				t.Errorf("ranking = %v, want [A B]", names)
			}
		})
	}
}

func TestRecommendEmptyCollection(t *testing.T) {
	t.Parallel()

	far := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[40,40],[41,40],[41,41],[40,41],[40,40]]]}}]}`
	srv := newTestServer(t, testStore(t), newFakeIsochrone(t, http.StatusOK, far), nil)

	rec := get(t, srv, "/recommend?lat=40.5&lon=40.5&mode=driving")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"features":[]`) {
		t.Errorf("expected empty features array, got %s", rec.Body.String())
	}
}

func TestRecommendErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		status     int
		body       string
		wantStatus int
		wantCode   string
		wantCalls  int32
	}{
		{"missing lat", "lon=1&mode=walking", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeValidation, 0},
		{"lat not a number", "lat=abc&lon=1&mode=walking", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeBadRequest, 0},
		{"lat NaN", "lat=NaN&lon=1&mode=walking", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeBadRequest, 0},
		{"lat out of range", "lat=95&lon=1&mode=walking", http.StatusUnprocessableEntity, `{"message":"Latitude must be between -90 and 90"}`, http.StatusBadGateway, ErrCodeUpstreamError, 1},
		{"minutes not an integer", "lat=1&lon=1&mode=walking&minutes=1.5", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeBadRequest, 0},
		{"minutes zero", "lat=1&lon=1&mode=walking&minutes=0", http.StatusUnprocessableEntity, `{"message":"contours_minutes must be between 1 and 60"}`, http.StatusBadGateway, ErrCodeUpstreamError, 1},
		{"unknown mode", "lat=1&lon=1&mode=flying", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeInvalidArgument, 0},
		{"missing mode", "lat=1&lon=1", http.StatusOK, isochroneSquare, http.StatusBadRequest, ErrCodeInvalidArgument, 0},
		{"upstream 503", "lat=1&lon=1&mode=driving", http.StatusServiceUnavailable, `{"message":"down"}`, http.StatusBadGateway, ErrCodeUpstreamError, 1},
		{"upstream 401", "lat=1&lon=1&mode=driving", http.StatusUnauthorized, `{"message":"Not Authorized"}`, http.StatusBadGateway, ErrCodeUpstreamError, 1},
		{"upstream zero features", "lat=1&lon=1&mode=driving", http.StatusOK, `{"type":"FeatureCollection","features":[]}`, http.StatusBadGateway, ErrCodeUpstreamBadResponse, 1},
		{"upstream garbage", "lat=1&lon=1&mode=driving", http.StatusOK, `<html>`, http.StatusBadGateway, ErrCodeUpstreamBadResponse, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			upstream := newFakeIsochrone(t, tt.status, tt.body)
			srv := newTestServer(t, testStore(t), upstream, nil)

			rec := get(t, srv, "/recommend?"+tt.query)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			resp := decodeEnvelope(t, rec)
			if resp.Success || resp.Error == nil {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.RequestID == "" {
				t.Error("request_id missing from error")
			}
			if got := upstream.calls.Load(); got != tt.wantCalls {
				t.Errorf("upstream calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRecommendUpstreamErrorDetails(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testStore(t), newFakeIsochrone(t, http.StatusUnprocessableEntity, `{"message":"Coordinate is invalid"}`), nil)

	rec := get(t, srv, "/recommend?lat=1&lon=1&mode=driving")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"upstream_status":422`) {
		t.Errorf("missing upstream status: %s", body)
	}
	if !strings.Contains(body, `Coordinate is invalid`) {
		t.Errorf("missing upstream body: %s", body)
	}
	if strings.Contains(body, "pk.test") {
		t.Errorf("access token leaked: %s", body)
	}
}

func TestRecommendDelegatesRangeChecksUpstream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantPath string
		wantArg  string
	}{
		{"coordinates out of range", "lat=95&lon=200&mode=walking", "/mapbox/walking/200,95", "contours_minutes=15"},
		{"zero minutes", "lat=1&lon=1&mode=driving&minutes=0", "/mapbox/driving/1,1", "contours_minutes=0"},
		{"negative minutes", "lat=1&lon=1&mode=driving&minutes=-5", "/mapbox/driving/1,1", "contours_minutes=-5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			upstream := newFakeIsochrone(t, http.StatusUnprocessableEntity, `{"message":"Invalid request"}`)
			srv := newTestServer(t, testStore(t), upstream, nil)

			rec := get(t, srv, "/recommend?"+tt.query)
			if rec.Code != http.StatusBadGateway {
				t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body.String())
			}
			if resp := decodeEnvelope(t, rec); resp.Error.Code != ErrCodeUpstreamError {
				t.Errorf("code = %q, want %q", resp.Error.Code, ErrCodeUpstreamError)
			}
			if !strings.Contains(rec.Body.String(), `"upstream_status":422`) {
				t.Errorf("missing upstream status: %s", rec.Body.String())
			}
			if got := upstream.calls.Load(); got != 1 {
				t.Fatalf("upstream calls = %d, want 1", got)
			}
			uri := upstream.lastURI()
			if !strings.HasPrefix(uri, tt.wantPath+"?") || !strings.Contains(uri, tt.wantArg) {
				t.Errorf("upstream request = %q, want path %q with %q", uri, tt.wantPath, tt.wantArg)
			}
		})
	}
}

func TestRecommendUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	upstream := newFakeIsochrone(t, http.StatusOK, isochroneSquare)
	srv := newTestServer(t, testStore(t), upstream, nil)
	upstream.server.Close()

	rec := get(t, srv, "/recommend?lat=1&lon=1&mode=walking")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeEnvelope(t, rec); resp.Error.Code != ErrCodeUpstreamUnavailable {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

func TestHotspotsStillServedAfterUpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testStore(t), newFakeIsochrone(t, http.StatusServiceUnavailable, "down"), nil)

	if rec := get(t, srv, "/recommend?lat=1&lon=1&mode=driving"); rec.Code != http.StatusBadGateway {
		t.Fatalf("recommend status = %d", rec.Code)
	}
	rec := get(t, srv, "/hotspots")
	if rec.Code != http.StatusOK {
		t.Fatalf("hotspots status = %d", rec.Code)
	}
	if n := len(decodeFeatureCollection(t, rec).Features); n != 2 {
		t.Errorf("features = %d, want 2", n)
	}
}

func TestDataUnavailable(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, newFakeIsochrone(t, http.StatusOK, isochroneSquare), nil)

	for _, path := range []string{"/hotspots", "/recommend?lat=1&lon=1&mode=walking"} {
		path := path
		rec := get(t, srv, path)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", path, rec.Code)
			continue
		}
		if resp := decodeEnvelope(t, rec); resp.Error.Code != ErrCodeDataUnavailable {
			t.Errorf("%s: code = %q", path, resp.Error.Code)
		}
	}
}
