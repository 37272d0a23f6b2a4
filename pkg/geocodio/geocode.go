package geocodio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// ErrQuotaExhausted is returned when the daily lookup quota is spent.
// No network call is made in that case.
var ErrQuotaExhausted = eris.New("geocodio: daily quota exhausted")

// geocodeResponse is the JSON response from the Geocod.io geocode API.
type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Location         struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
		AccuracyType string `json:"accuracy_type"`
	} `json:"results"`
}

// Geocode verifies a single raw address. The quota is reserved before
// the request is issued; unmatched addresses return a Result with
// Matched false rather than an error.
func (c *client) Geocode(ctx context.Context, rawAddress string) (*Result, error) {
	if c.quota.Add(-1) < 0 {
		c.quota.Add(1)
		return nil, ErrQuotaExhausted
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocodio: rate limit")
	}

	params := url.Values{
		"q":       {rawAddress},
		"api_key": {c.apiKey},
		"limit":   {"1"},
	}

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocodio: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocodio: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocodio: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocodio: read body")
	}

	var gr geocodeResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, eris.Wrap(err, "geocodio: parse response")
	}

	if len(gr.Results) == 0 {
		return &Result{Matched: false}, nil
	}

	first := gr.Results[0]
	point := geom.NewPointFlat(geom.XY, []float64{first.Location.Lng, first.Location.Lat})
	return &Result{
		Formatted:  first.FormattedAddress,
		Latitude:   first.Location.Lat,
		Longitude:  first.Location.Lng,
		Location:   point,
		Accuracy:   first.AccuracyType,
		Confidence: accuracyConfidence(first.AccuracyType),
		Matched:    true,
	}, nil
}

// NormalizeAddress is the escalation hook used when local address
// confidence is too low. It never propagates an error: failures and a
// spent quota both yield nil, with the cause logged.
func NormalizeAddress(ctx context.Context, c Client, rawAddress string) *Result {
	result, err := c.Geocode(ctx, rawAddress)
	if err != nil {
		zap.L().Debug("geocodio escalation skipped",
			zap.String("address", rawAddress),
			zap.Error(err))
		return nil
	}
	if !result.Matched {
		return nil
	}
	return result
}
