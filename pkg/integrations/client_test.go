package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/aurorder/pkg/cache"
	"github.com/matzehuels/aurorder/pkg/httputil"
	"github.com/matzehuels/aurorder/pkg/observability"
)

func TestNewClient(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	headers := map[string]string{"User-Agent": "aurorder-test"}
	client := NewClient(c, "test:", time.Hour, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache != c {
		t.Error("NewClient() cache not set correctly")
	}
	if client.headers["User-Agent"] != "aurorder-test" {
		t.Error("NewClient() headers not set correctly")
	}
	if client.retries != 0 {
		t.Errorf("NewClient() retries = %d, want 0", client.retries)
	}
}

func TestNewClientNilCache(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)
	if _, ok := client.cache.(cache.NullCache); !ok {
		t.Errorf("nil backend should fall back to NullCache, got %T", client.cache)
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(cache.NewNullCache(), "test:", time.Hour, nil)
	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	var resp map[string]any
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Get() error = %v, want ErrMalformed", err)
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var ua, custom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		custom = r.Header.Get("X-Custom")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, map[string]string{"User-Agent": "default", "X-Custom": "default"})
	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Custom": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if ua != "default" {
		t.Errorf("User-Agent = %q, want %q", ua, "default")
	}
	if custom != "overridden" {
		t.Errorf("X-Custom = %q, want %q", custom, "overridden")
	}
}

func TestClientGet500IsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
	if !httputil.IsRetryable(err) {
		t.Errorf("Get() error should be retryable, got %T", err)
	}
}

func TestClientGetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)

	var resp map[string]string
	if err := client.Get(context.Background(), url, &resp); !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
}

func TestClientCached(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := NewClient(c, "test:", time.Hour, nil)

	type testData struct {
		Value string `json:"value"`
	}

	fetchCount := 0
	fetch := func(v *testData) func() error {
		return func() error {
			fetchCount++
			*v = testData{Value: "fetched"}
			return nil
		}
	}

	var first testData
	if err := client.Cached(context.Background(), "key", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}

	var second testData
	if err := client.Cached(context.Background(), "key", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1", fetchCount)
	}
	if second.Value != "fetched" {
		t.Errorf("cached value = %q, want %q", second.Value, "fetched")
	}
}

func TestClientCachedRefresh(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := NewClient(c, "test:", time.Hour, nil)

	fetchCount := 0
	var value string
	fetch := func() error {
		fetchCount++
		value = "fetched"
		return nil
	}

	for range 2 {
		if err := client.Cached(context.Background(), "test-key", true, &value, fetch); err != nil {
			t.Fatalf("Cached() error: %v", err)
		}
	}
	if fetchCount != 2 {
		t.Errorf("fetch count = %d, want 2", fetchCount)
	}
}

func TestClientCachedNoRetryByDefault(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)

	fetchCount := 0
	var value string
	err := client.Cached(context.Background(), "key", false, &value, func() error {
		fetchCount++
		return httputil.Retryable(ErrNetwork)
	})
	if err == nil {
		t.Error("Cached() should return error when fetch fails")
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1", fetchCount)
	}
}

func TestClientCachedRetries(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)
	client.SetRetries(1)

	fetchCount := 0
	var value string
	err := client.Cached(context.Background(), "key", false, &value, func() error {
		fetchCount++
		if fetchCount == 1 {
			return httputil.Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 2 {
		t.Errorf("fetch count = %d, want 2", fetchCount)
	}
}

type countingHTTPHooks struct {
	observability.NoopHTTPHooks
	requests  atomic.Int32
	responses atomic.Int32
}

func (h *countingHTTPHooks) OnRequest(context.Context, string, string, string) {
	h.requests.Add(1)
}

func (h *countingHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
	h.responses.Add(1)
}

func TestClientEmitsHTTPHooks(t *testing.T) {
	hooks := &countingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	var resp map[string]any
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hooks.requests.Load() != 1 || hooks.responses.Load() != 1 {
		t.Errorf("hooks saw %d requests, %d responses; want 1, 1", hooks.requests.Load(), hooks.responses.Load())
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantType   error
		isRetryErr bool
	}{
		{name: "200 OK", code: 200},
		{name: "404 Not Found", code: 404, wantType: ErrNotFound},
		{name: "429 Too Many Requests", code: 429, wantType: ErrRateLimited},
		{name: "500 Internal Server Error", code: 500, wantType: ErrNetwork, isRetryErr: true},
		{name: "503 Service Unavailable", code: 503, wantType: ErrNetwork, isRetryErr: true},
		{name: "400 Bad Request", code: 400, wantType: ErrNetwork},
		{name: "403 Forbidden", code: 403, wantType: ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)

			if tt.wantType == nil {
				if err != nil {
					t.Errorf("checkStatus() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantType) {
				t.Errorf("checkStatus() error = %v, want %v", err, tt.wantType)
			}
			if got := httputil.IsRetryable(err); got != tt.isRetryErr {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.isRetryErr)
			}
		})
	}
}

func TestNormalizePkgName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Package", "package"},
		{"  yay  ", "yay"},
		{"python_foo", "python_foo"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizePkgName(tt.input); got != tt.want {
			t.Errorf("NormalizePkgName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
