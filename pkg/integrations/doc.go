// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// The [Client] type provides shared HTTP functionality used by the
// registry clients:
//
//   - default headers (User-Agent) on every request
//   - status mapping to [ErrNotFound], [ErrRateLimited] and [ErrNetwork]
//   - JSON decoding with decode failures reported as [ErrMalformed]
//   - optional response caching via [cache.Cache]
//   - optional retry of transient failures via [httputil.Retry]
//   - request/response events via [observability.HTTP]
//
// Registry-specific clients live in subpackages:
//
//   - [aur]: Arch User Repository RPC (v5 multi-info)
//
// [aur]: github.com/matzehuels/aurorder/pkg/integrations/aur
// [cache.Cache]: github.com/matzehuels/aurorder/pkg/cache.Cache
// [httputil.Retry]: github.com/matzehuels/aurorder/pkg/httputil.Retry
// [observability.HTTP]: github.com/matzehuels/aurorder/pkg/observability.HTTP
package integrations
