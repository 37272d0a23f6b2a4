package geocodio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rooftopResponse = `{
	"results": [{
		"formatted_address": "123 Main St, Brooklyn, NY 11201",
		"location": {"lat": 40.6892, "lng": -73.9902},
		"accuracy_type": "rooftop"
	}]
}`

func newTestServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeocode_Rooftop(t *testing.T) {
	srv := newTestServer(t, rooftopResponse)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	result, err := c.Geocode(context.Background(), "123 main st brooklyn ny")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "123 Main St, Brooklyn, NY 11201", result.Formatted)
	assert.InDelta(t, 40.6892, result.Latitude, 0.0001)
	assert.InDelta(t, -73.9902, result.Longitude, 0.0001)
	assert.Equal(t, 95, result.Confidence)
	require.NotNil(t, result.Location)
	assert.InDelta(t, -73.9902, result.Location.X(), 0.0001)
	assert.InDelta(t, 40.6892, result.Location.Y(), 0.0001)
}

func TestGeocode_AccuracyTiers(t *testing.T) {
	assert.Equal(t, 95, accuracyConfidence("rooftop"))
	assert.Equal(t, 80, accuracyConfidence("range_interpolation"))
	assert.Equal(t, 60, accuracyConfidence("nearest_street"))
	assert.Equal(t, 40, accuracyConfidence("place"))
	assert.Equal(t, 40, accuracyConfidence(""))
}

func TestGeocode_NoMatch(t *testing.T) {
	srv := newTestServer(t, `{"results": []}`)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	result, err := c.Geocode(context.Background(), "nonsense input")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestGeocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	c := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := c.Geocode(context.Background(), "123 main st")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGeocode_QuotaExhausted(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, rooftopResponse)
	}))
	defer srv.Close()
	c := NewClient("test-key", WithBaseURL(srv.URL), WithDailyQuota(1))

	_, err := c.Geocode(context.Background(), "123 main st")
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.Remaining())

	_, err = c.Geocode(context.Background(), "456 main st")
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, int64(1), calls.Load(), "no network call once quota is spent")
}

func TestNormalizeAddress_SwallowsFailures(t *testing.T) {
	c := NewClient("test-key", WithDailyQuota(0))
	assert.Nil(t, NormalizeAddress(context.Background(), c, "123 main st"))
}

func TestNormalizeAddress_NilOnNoMatch(t *testing.T) {
	srv := newTestServer(t, `{"results": []}`)
	c := NewClient("test-key", WithBaseURL(srv.URL))
	assert.Nil(t, NormalizeAddress(context.Background(), c, "nonsense"))
}

func TestNormalizeAddress_Match(t *testing.T) {
	srv := newTestServer(t, rooftopResponse)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	r := NormalizeAddress(context.Background(), c, "123 main st brooklyn ny")
	require.NotNil(t, r)
	assert.Equal(t, 95, r.Confidence)
}

func TestBatchGeocode(t *testing.T) {
	srv := newTestServer(t, rooftopResponse)
	c := NewClient("test-key", WithBaseURL(srv.URL), WithBatchConcurrency(2))

	results, err := c.BatchGeocode(context.Background(), []string{
		"123 main st", "456 broadway", "789 fifth ave",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Matched)
	}
}

func TestBatchGeocode_Empty(t *testing.T) {
	c := NewClient("test-key")
	results, err := c.BatchGeocode(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestBatchGeocode_QuotaFailuresAreUnmatched(t *testing.T) {
	srv := newTestServer(t, rooftopResponse)
	c := NewClient("test-key", WithBaseURL(srv.URL), WithDailyQuota(1), WithBatchConcurrency(1))

	results, err := c.BatchGeocode(context.Background(), []string{"123 main st", "456 broadway"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Matched)
	assert.False(t, results[1].Matched)
}

func TestGeocode_SendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		_, _ = io.WriteString(w, `{"results": []}`)
	}))
	defer srv.Close()
	c := NewClient("secret-key", WithBaseURL(srv.URL))

	_, err := c.Geocode(context.Background(), "123 main st")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}
