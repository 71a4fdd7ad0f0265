// Package pkg provides the libraries behind aurorder, a build order
// resolver for the Arch User Repository.
//
// # Overview
//
// Given one AUR package, aurorder discovers every AUR package it depends on
// (runtime and build dependencies, transitively) and orders them so that each
// package comes after everything it needs. Dependencies without an AUR record
// are assumed to come from the official repositories and are reported, not
// built.
//
// # Architecture
//
// The data flow through aurorder:
//
//	AUR RPC (type=info, batched)
//	         ↓
//	    [integrations/aur] (URL packing, response validation)
//	         ↓
//	    [deps] (worklist discovery, install order, stages)
//	         ↓
//	    [dag] (dependency graph, cycle detection)
//	         ↓
//	    [io] / [render/nodelink] (JSON plan, DOT/SVG/PDF/PNG)
//
// # Quick Start
//
//	client := aur.NewClient(aur.Config{})
//	order, err := depsaur.NewResolver(client).ResolveInstallOrder(ctx, "yay", deps.Options{})
//	if err != nil {
//	    return err
//	}
//	// order: [... "yay"]
//
// # Package Organization
//
// ## Resolution
//
// [deps] - Resolver and install plan. The resolver talks to any [deps.Fetcher];
// [deps/aur] binds it to the AUR RPC client.
//
// [dag] - Directed graph with insertion order, install stage rows and cycle
// detection.
//
// ## External Integrations
//
// [integrations] - Shared HTTP client with optional caching and retries.
//
// [integrations/aur] - AUR RPC v5 client. Splits name lists into requests
// that fit the URL length limit and rejects responses of another version or
// type.
//
// ## Output
//
// [io] - JSON import and export of plans and graphs.
//
// [render/nodelink] - Graphviz diagrams of the dependency graph.
//
// [render] - SVG to PDF/PNG conversion.
//
// ## Support
//
// [cache] - Response cache backends (file, Redis, null).
//
// [httputil] - Retry with exponential backoff.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for resolve, cache and HTTP events.
//
// [buildinfo] - Version information set at link time.
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/deps
// [deps.Fetcher]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/deps#Fetcher
// [deps/aur]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/deps/aur
// [dag]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/dag
// [integrations]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/integrations
// [integrations/aur]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/integrations/aur
// [io]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/aurorder/pkg/buildinfo
package pkg
