package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. It backs resolutions run without --cache, so
// every RPC query goes to the AUR, and stands in for a cache directory that
// was never created.
type NullCache struct{}

// NewNullCache returns a cache on which every lookup is a miss.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

// Clear reports zero removed entries.
func (NullCache) Clear(context.Context) (int, error) { return 0, nil }

func (NullCache) Close() error { return nil }

var (
	_ Cache   = NullCache{}
	_ Clearer = NullCache{}
)
