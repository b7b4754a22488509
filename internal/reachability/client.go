// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package reachability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wheretodine/internal/geo"
	"github.com/tomtom215/wheretodine/internal/logging"
	"github.com/tomtom215/wheretodine/internal/metrics"
)

// maxErrorBody bounds how much of an error response is kept for diagnostics.
const maxErrorBody = 4 << 10

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. https://api.mapbox.com/isochrone/v1.
	BaseURL string

	// ProfilePrefix is joined with the mode to form the routing profile
	// ("mapbox" gives mapbox/driving).
	ProfilePrefix string

	AccessToken string

	// Timeout bounds one request including reading the body.
	Timeout time.Duration

	// MaxResponseBytes bounds a successful response body.
	MaxResponseBytes int64

	Breaker BreakerSettings

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the isochrone service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	prefix     string
	token      string
	maxBody    int64
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*geo.Area]
}

// NewClient validates opts and builds a client.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.AccessToken) == "" {
		return nil, errors.New("reachability: access token is required")
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("reachability: invalid base URL %q", opts.BaseURL)
	}
	if opts.ProfilePrefix == "" {
		opts.ProfilePrefix = "mapbox"
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = 4 << 20
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		prefix:     opts.ProfilePrefix,
		token:      opts.AccessToken,
		maxBody:    opts.MaxResponseBytes,
		httpClient: hc,
	}
	if opts.Breaker.Enabled {
		c.breaker = newBreaker(opts.Breaker)
	}
	return c, nil
}

// Fetch returns the area reachable from origin within minutes using mode.
// Invalid arguments are rejected before any network activity. Cancelling ctx
// aborts the outbound request.
func (c *Client) Fetch(ctx context.Context, origin geo.Coordinate, mode Mode, minutes int) (*geo.Area, error) {
	if err := ValidateRequest(origin, mode); err != nil {
		return nil, err
	}

	start := time.Now()
	area, err := c.execute(func() (*geo.Area, error) {
		return c.fetch(ctx, origin, mode, minutes)
	})

	outcome := "success"
	if err != nil {
		outcome = KindOf(err).String()
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("mode", string(mode)).
			Int("minutes", minutes).
			Float64("lat", origin.Lat).
			Float64("lon", origin.Lon).
			Msg("Isochrone request failed")
	}
	metrics.RecordIsochroneRequest(string(mode), outcome, time.Since(start))
	return area, err
}

// ValidateRequest reports an InvalidArgument error for arguments Fetch
// would reject. Coordinate ranges and minutes are validated by the upstream,
// whose rejection surfaces as KindUpstreamError.
func ValidateRequest(origin geo.Coordinate, mode Mode) error {
	if !mode.Valid() {
		return invalidArgument("mode must be 'driving' or 'walking', got %q", string(mode))
	}
	if !finite(origin.Lat) || !finite(origin.Lon) {
		return invalidArgument("coordinates must be finite numbers")
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, origin geo.Coordinate, mode Mode, minutes int) (*geo.Area, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(origin, mode, minutes), http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Message: "failed to create request", Err: redact(err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Message: "isochrone service unreachable", Err: redact(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			Kind:       KindUpstreamError,
			Message:    "isochrone service returned an error",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Message: "failed to read isochrone response", Err: redact(err)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &Error{Kind: KindUpstreamBadResponse, Message: fmt.Sprintf("response exceeds %d bytes", c.maxBody)}
	}

	return parseIsochrone(body)
}

// parseIsochrone takes the first feature's geometry as the reachable area.
func parseIsochrone(body []byte) (*geo.Area, error) {
	fc, err := geo.DecodeFeatureCollection(body)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamBadResponse, Message: "response is not a feature collection", Err: err}
	}
	if len(fc.Features) == 0 || fc.Features[0] == nil {
		return nil, &Error{Kind: KindUpstreamBadResponse, Message: "no isochrone feature in response"}
	}
	area, err := geo.NewArea(fc.Features[0].Geometry)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamBadResponse, Message: "isochrone geometry is not a polygon", Err: err}
	}
	return area, nil
}

// requestURL puts the origin in lon,lat order.
func (c *Client) requestURL(origin geo.Coordinate, mode Mode, minutes int) string {
	coords := strconv.FormatFloat(origin.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(origin.Lat, 'f', -1, 64)

	q := url.Values{}
	q.Set("contours_minutes", strconv.Itoa(minutes))
	q.Set("polygons", "true")
	q.Set("access_token", c.token)

	return c.baseURL + "/" + url.PathEscape(c.prefix) + "/" + string(mode) + "/" + coords + "?" + q.Encode()
}

// redact drops the *url.Error wrapper, whose message repeats the request
// URL and therefore the access token.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
