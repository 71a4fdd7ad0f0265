package cache

import (
	"bytes"
	"context"
	"os"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "aur:yay", []byte(`{"version":5}`), time.Hour); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if data, hit, err := c.Get(ctx, "aur:yay"); err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v; want a miss", data, hit, err)
	}
	if err := c.Delete(ctx, "aur:yay"); err != nil {
		t.Errorf("Delete() failed: %v", err)
	}

	clearer, ok := c.(Clearer)
	if !ok {
		t.Fatal("NullCache should implement Clearer")
	}
	if n, err := clearer.Clear(ctx); n != 0 || err != nil {
		t.Errorf("Clear() = %d, %v; want 0, nil", n, err)
	}
}

func TestFileCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}
	defer c.Close()

	want := []byte(`{"version":5,"type":"multiinfo"}`)
	if err := c.Set(ctx, "aur:yay", want, time.Hour); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, hit, err := c.Get(ctx, "aur:yay")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !hit {
		t.Fatal("Get() returned miss for existing key")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %s, want %s", got, want)
	}
}

func TestFileCache_ConcurrentSet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}

	payloads := make([][]byte, 8)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte('a' + i)}, 64<<10)
	}

	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 20 {
				if err := c.Set(ctx, "aur:batch", p, time.Hour); err != nil {
					t.Errorf("Set() failed: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range 20 {
				got, hit, err := c.Get(ctx, "aur:batch")
				if err != nil {
					t.Errorf("Get() failed: %v", err)
					return
				}
				if hit && !slices.ContainsFunc(payloads, func(p []byte) bool { return bytes.Equal(p, got) }) {
					t.Error("Get() returned a partially written entry")
					return
				}
			}
		}()
	}
	wg.Wait()

	if _, hit, _ := c.Get(ctx, "aur:batch"); !hit {
		t.Error("entry missing after concurrent writes")
	}
	files := 0
	filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files++
		}
		return nil
	})
	if files != 1 {
		t.Errorf("found %d files, want 1 (temporary files left behind?)", files)
	}
}

func TestFileCache_Miss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	_, hit, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Error("Get() returned hit for missing key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Fatal("Get() should hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get() returned hit for expired key")
	}
}

func TestFileCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)
	fc := c.(*FileCache)

	path := fc.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("Get() = hit %v, err %v; want miss, nil", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	_ = c.Set(ctx, "key", []byte("value"), 0)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get() after Delete() should miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() of missing key should not fail: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHTTPKey(t *testing.T) {
	if got := HTTPKey("aur", "https://aur.archlinux.org/rpc/?v=5"); got != "http:aur:https://aur.archlinux.org/rpc/?v=5" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)
	fc := c.(*FileCache)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}

	n, err := fc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d entries, want 3", n)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache dir should survive Clear(): %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear(), want 0", len(entries))
	}
	if fc.Dir() != dir {
		t.Errorf("Dir() = %s, want %s", fc.Dir(), dir)
	}
}
