package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dtnitsch/wikilens/pkg/caching"
	"golang.org/x/time/rate"
)

const userAgent = "wikilens/1.0 (+https://github.com/dtnitsch/wikilens)"

type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	cache   *caching.Cache
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRateLimit caps outbound requests per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithCache serves repeat fetches of the same URL from c until it expires.
func WithCache(c *caching.Cache) Option {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithClient replaces the default HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetHtmlBytes returns the body of url, from the cache when one is set and
// holds a fresh copy. Any status other than 200 is an error.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			return data, nil
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		// A failed cache write only costs a refetch later.
		_ = f.cache.Set(url, bodyBytes)
	}
	return bodyBytes, nil
}
