// Package deps computes install plans for AUR packages.
//
// # Overview
//
// Building an AUR package requires its AUR dependencies to be built and
// installed first. This package discovers the dependency closure of a root
// package through a [Fetcher] and derives an order in which the packages
// can be installed.
//
// # Resolving
//
//	r := deps.NewResolver(fetcher)
//	order, err := r.ResolveInstallOrder(ctx, "yay", deps.Options{})
//
// [Resolver.Resolve] returns the full [Plan]: the order, install stages,
// the dependency graph and diagnostics.
//
// # Discovery
//
// Discovery is a worklist. Every round hands all pending names to the
// fetcher in one call; the fetcher is responsible for splitting them into
// requests. Each returned record queues its dependencies that have not been
// requested yet. A name is requested at most once per resolution.
//
// Names the fetcher has no record of are external: they are expected to be
// provided by another repository and do not take part in the order. If the
// root itself has no record the plan degenerates to [root].
//
// # Version Constraints
//
// Dependency strings containing a comparison operator ("python>=3.10") are
// not followed. They are logged as warnings and listed in
// [Plan.Constrained].
//
// # Ordering
//
// The order is a topological sort of the packages with a record. When
// several packages are ready at the same time, the one discovered first is
// emitted first, so the same records always produce the same order. A cycle
// fails with a CIRCULAR_DEPENDENCY error naming its members. The root is
// always the last element; anything else is reported as INTERNAL_ERROR.
//
// # Fetchers
//
// The [aur] subpackage provides a Fetcher backed by the AUR RPC.
//
// [aur]: github.com/matzehuels/aurorder/pkg/deps/aur
package deps
