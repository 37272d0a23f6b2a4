// Package geocodio provides address verification via the Geocod.io API,
// used as an escalation step when local address normalization is not
// confident enough.
package geocodio

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Client verifies addresses against the Geocod.io API.
type Client interface {
	// Geocode verifies a single raw address.
	Geocode(ctx context.Context, rawAddress string) (*Result, error)

	// BatchGeocode verifies multiple addresses concurrently.
	BatchGeocode(ctx context.Context, rawAddresses []string) ([]Result, error)

	// Remaining reports how many lookups are left in the daily quota.
	Remaining() int64
}

// Result holds the verified form of an address.
type Result struct {
	Formatted  string      `json:"formatted" yaml:"formatted"`
	Latitude   float64     `json:"lat" yaml:"lat"`
	Longitude  float64     `json:"lng" yaml:"lng"`
	Location   *geom.Point `json:"-" yaml:"-"`
	Accuracy   string      `json:"accuracy" yaml:"accuracy"` // "rooftop", "range_interpolation", "nearest_street", ...
	Confidence int         `json:"confidence" yaml:"confidence"`
	Matched    bool        `json:"matched" yaml:"matched"`
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// WithRateLimit sets the requests-per-second rate limit.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithDailyQuota caps the number of lookups the client will issue.
// Once spent, Geocode returns ErrQuotaExhausted without any network
// call.
func WithDailyQuota(n int64) Option {
	return func(c *client) {
		c.quota.Store(n)
	}
}

// WithBatchConcurrency sets how many lookups BatchGeocode runs at once.
func WithBatchConcurrency(n int) Option {
	return func(c *client) {
		if n > 0 {
			c.batchConcurrency = n
		}
	}
}

type client struct {
	apiKey           string
	baseURL          string
	httpClient       *http.Client
	limiter          *rate.Limiter
	quota            atomic.Int64
	batchConcurrency int
}

const defaultBaseURL = "https://api.geocod.io/v1.7/geocode"

// NewClient creates a Geocod.io Client with the given options.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:           apiKey,
		baseURL:          defaultBaseURL,
		httpClient:       &http.Client{Timeout: 15 * time.Second},
		limiter:          rate.NewLimiter(10, 10),
		batchConcurrency: 5,
	}
	c.quota.Store(2500) // Geocod.io free-tier daily allowance
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Remaining() int64 {
	return c.quota.Load()
}

// BatchGeocode verifies addresses concurrently. Per-address failures
// surface as unmatched results rather than failing the batch; only
// context cancellation aborts it.
func (c *client) BatchGeocode(ctx context.Context, rawAddresses []string) ([]Result, error) {
	if len(rawAddresses) == 0 {
		return nil, nil
	}

	results := make([]Result, len(rawAddresses))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, raw := range rawAddresses {
		i, raw := i, raw
		g.Go(func() error {
			r, err := c.Geocode(ctx, raw)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				results[i] = Result{Matched: false}
				return nil
			}
			results[i] = *r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// accuracyConfidence maps a Geocod.io accuracy tier to the confidence
// score the resolution pipeline expects.
func accuracyConfidence(accuracy string) int {
	switch accuracy {
	case "rooftop":
		return 95
	case "range_interpolation":
		return 80
	case "nearest_street":
		return 60
	default:
		return 40
	}
}
