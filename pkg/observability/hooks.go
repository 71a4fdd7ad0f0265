// Package observability lets a host program watch aurorder at work without
// tying the library to a metrics or tracing backend.
//
// Three event sources exist: the resolver ([ResolveHooks]) reports each
// resolution and every worklist round, the response cache ([CacheHooks])
// reports hits, misses and writes, and the shared HTTP client
// ([HTTPHooks]) reports every call to the AUR RPC. Each source defaults to
// a no-op implementation.
//
// Register hooks once at startup, before resolving anything:
//
//	observability.SetResolveHooks(myResolveHooks{})
//	observability.SetHTTPHooks(myHTTPHooks{})
//
// The aurorder CLI registers debug-level log hooks for --verbose.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from install order resolution.
type ResolveHooks interface {
	// OnResolveStart records the start of a resolution for pkg.
	OnResolveStart(ctx context.Context, pkg string)

	// OnBatch records one worklist round handing names to the fetcher.
	OnBatch(ctx context.Context, names []string, found int)

	// OnResolveComplete records the end of a resolution. count is the length
	// of the install order (0 on error).
	OnResolveComplete(ctx context.Context, pkg string, count int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string) {}
func (NoopResolveHooks) OnBatch(context.Context, []string, int) {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// slot holds the registered implementation of one hook interface.
type slot[T any] struct {
	mu    sync.RWMutex
	hooks T
	noop  T
}

func newSlot[T any](noop T) *slot[T] { return &slot[T]{hooks: noop, noop: noop} }

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hooks
}

// set installs h; a nil h leaves the current hooks in place.
func (s *slot[T]) set(h T) {
	if any(h) == nil {
		return
	}
	s.mu.Lock()
	s.hooks = h
	s.mu.Unlock()
}

func (s *slot[T]) reset() {
	s.mu.Lock()
	s.hooks = s.noop
	s.mu.Unlock()
}

var (
	resolveSlot = newSlot[ResolveHooks](NoopResolveHooks{})
	cacheSlot   = newSlot[CacheHooks](NoopCacheHooks{})
	httpSlot    = newSlot[HTTPHooks](NoopHTTPHooks{})
)

// SetResolveHooks registers resolver hooks. Nil is ignored.
func SetResolveHooks(h ResolveHooks) { resolveSlot.set(h) }

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) { cacheSlot.set(h) }

// SetHTTPHooks registers HTTP client hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) { httpSlot.set(h) }

// Resolve returns the registered resolver hooks.
func Resolve() ResolveHooks { return resolveSlot.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheSlot.get() }

// HTTP returns the registered HTTP client hooks.
func HTTP() HTTPHooks { return httpSlot.get() }

// Reset restores the no-op hooks for every event source.
func Reset() {
	resolveSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
