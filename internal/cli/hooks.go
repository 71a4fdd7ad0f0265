package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aurorder/pkg/observability"
)

// logHooks reports resolver, cache and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

// registerLogHooks installs logHooks for every observability event source.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetResolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnResolveStart(_ context.Context, pkg string) {
	h.logger.Debug("resolve started", "package", pkg)
}

func (h logHooks) OnBatch(_ context.Context, names []string, found int) {
	h.logger.Debug("round fetched", "requested", len(names), "found", found)
}

func (h logHooks) OnResolveComplete(_ context.Context, pkg string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("resolve failed", "package", pkg, "duration", d, "error", err)
		return
	}
	h.logger.Debug("resolve finished", "package", pkg, "packages", count, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "error", err)
}
