package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/aurorder/pkg/cache"
	"github.com/matzehuels/aurorder/pkg/httputil"
	"github.com/matzehuels/aurorder/pkg/observability"
)

// retryDelay is the initial backoff between attempts when retries are enabled.
const retryDelay = 500 * time.Millisecond

// Client provides shared HTTP functionality for registry API clients.
// It handles optional response caching, retry logic, status mapping and
// common request headers.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	keyPrefix string
	ttl       time.Duration
	headers   map[string]string
	retries   int
}

// NewClient creates a Client with the given cache backend and default headers.
// keyPrefix namespaces cache keys (e.g. "aur:"). Headers are applied to all
// requests made through this client; pass nil if none are needed.
// A nil backend disables caching.
func NewClient(backend cache.Cache, keyPrefix string, ttl time.Duration, headers map[string]string) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:      NewHTTPClient(DefaultTimeout),
		cache:     backend,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		headers:   headers,
	}
}

// SetTimeout replaces the per-request timeout. Non-positive values keep
// the current timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http = NewHTTPClient(d)
	}
}

// SetRetries sets how many times a transient failure is retried.
// Zero, the default, means every request is attempted once.
func (c *Client) SetRetries(n int) {
	c.retries = max(n, 0)
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache read is skipped and fetch is always called.
// The fetch function should populate v; on success, v is stored in the cache.
// Cache failures never fail the call.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	fullKey := cache.HTTPKey(c.keyPrefix, key)
	hooks := observability.Cache()

	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, fullKey); ok {
			if json.Unmarshal(data, v) == nil {
				hooks.OnCacheHit(ctx, "http")
				return nil
			}
		}
		hooks.OnCacheMiss(ctx, "http")
	}

	if err := httputil.Retry(ctx, 1+c.retries, retryDelay, fetch); err != nil {
		return err
	}

	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, fullKey, data, c.ttl) == nil {
			hooks.OnCacheSet(ctx, "http", len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Decoding failures are reported as [ErrMalformed].
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return c.GetWithHeaders(ctx, rawURL, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, rawURL string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, httputil.Retryable(fmt.Errorf("%w: %w", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
