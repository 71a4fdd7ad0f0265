package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/aurorder/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// Should be under home directory
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(base, "aurorder"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestOpenCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	cc, err := c.openCache(t.Context())
	if err != nil {
		t.Fatalf("openCache: %v", err)
	}
	defer cc.Close()
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default backend = %T, want *cache.FileCache", cc)
	}
	dir, _ := cacheDir()
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestNewClientCacheOff(t *testing.T) {
	c := New(io.Discard, LogInfo)
	_, cc, err := c.newClient(t.Context())
	if err != nil {
		t.Fatalf("newClient: %v", err)
	}
	if _, hit, _ := cc.Get(t.Context(), "k"); hit {
		t.Error("cache should be disabled by default")
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("cache = %T, want cache.NullCache", cc)
	}
}

func TestOpenCacheRedisUnreachable(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.CacheBackend = backendRedis
	c.Config.RedisURL = "redis://127.0.0.1:1/0"

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	if _, err := c.openCache(ctx); err == nil {
		t.Error("expected error for unreachable redis")
	}
}
