package deps

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aurorder/pkg/observability"
)

// Fetcher retrieves package records from a metadata service.
type Fetcher interface {
	// Fetch returns the records for names. Names unknown to the service are
	// absent from the result; that is not an error. If refresh is true,
	// cached data is bypassed.
	Fetch(ctx context.Context, names []string, refresh bool) ([]*Package, error)
}

// Resolver computes install plans by crawling a Fetcher.
//
// Resolution is sequential: each round hands every pending name to the
// fetcher and waits for the answer before the next round starts.
type Resolver struct {
	fetcher Fetcher
}

// NewResolver creates a Resolver that discovers packages through fetcher.
func NewResolver(fetcher Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// ResolveInstallOrder returns the order in which root and its dependencies
// from the metadata service can be installed. Dependencies come before
// their dependents and root is always last. If the service has no record
// of root, the order is just [root].
func (r *Resolver) ResolveInstallOrder(ctx context.Context, root string, opts Options) ([]string, error) {
	plan, err := r.Resolve(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	return plan.Order, nil
}

// Resolve discovers the dependency closure of root and computes its
// install plan. No partial plan is returned on error.
func (r *Resolver) Resolve(ctx context.Context, root string, opts Options) (plan *Plan, err error) {
	opts = opts.WithDefaults()
	hooks := observability.Resolve()
	start := time.Now()
	hooks.OnResolveStart(ctx, root)
	defer func() {
		count := 0
		if plan != nil {
			count = len(plan.Order)
		}
		hooks.OnResolveComplete(ctx, root, count, time.Since(start), err)
	}()

	s := newSession(root, opts.Logger)
	if err := s.discover(ctx, r.fetcher, opts); err != nil {
		return nil, err
	}
	return s.plan()
}

// session is the mutable state of one resolution. It is owned by a single
// Resolve call and never shared.
type session struct {
	root   string
	logger *log.Logger

	visited map[string]bool     // names handed to the fetcher
	queued  map[string]bool     // names waiting in pending
	pending []string            // worklist
	records map[string]*Package // fetched records by name

	visitOrder  []string // visited names in the order they were requested
	recordOrder []string // record names in the order they were discovered
	deps        map[string][]string
	constrained []ConstrainedDep
	rounds      int
}

func newSession(root string, logger *log.Logger) *session {
	return &session{
		root:    root,
		logger:  logger,
		visited: make(map[string]bool),
		queued:  map[string]bool{root: true},
		pending: []string{root},
		records: make(map[string]*Package),
		deps:    make(map[string][]string),
	}
}

// discover runs the worklist until no unvisited names remain.
func (s *session) discover(ctx context.Context, f Fetcher, opts Options) error {
	for len(s.pending) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch := s.pending
		s.pending = nil
		for _, name := range batch {
			delete(s.queued, name)
			s.visited[name] = true
			s.visitOrder = append(s.visitOrder, name)
		}

		pkgs, err := f.Fetch(ctx, batch, opts.Refresh)
		if err != nil {
			return err
		}
		s.rounds++
		observability.Resolve().OnBatch(ctx, batch, len(pkgs))
		s.logger.Debug("fetched batch", "round", s.rounds, "requested", len(batch), "found", len(pkgs))

		for _, p := range pkgs {
			s.add(p)
		}
		if opts.Progress != nil {
			opts.Progress(s.rounds, len(s.records))
		}
	}
	return nil
}

// add stores a fetched record and queues its unvisited dependencies.
func (s *session) add(p *Package) {
	if p == nil {
		return
	}
	if !s.visited[p.Name] {
		s.logger.Warn("ignoring record that was not requested", "package", p.Name)
		return
	}
	if _, dup := s.records[p.Name]; dup {
		return
	}
	s.records[p.Name] = p
	s.recordOrder = append(s.recordOrder, p.Name)

	names, constrained := splitDependencies(p)
	for _, raw := range constrained {
		s.logger.Warn("skipping version-constrained dependency", "package", p.Name, "dependency", raw)
		s.constrained = append(s.constrained, ConstrainedDep{Package: p.Name, Raw: raw})
	}
	s.deps[p.Name] = names
	for _, dep := range names {
		if !s.visited[dep] && !s.queued[dep] {
			s.queued[dep] = true
			s.pending = append(s.pending, dep)
		}
	}
}
