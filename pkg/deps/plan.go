package deps

import (
	"slices"

	"github.com/matzehuels/aurorder/pkg/dag"
)

// Plan is the result of resolving a package.
type Plan struct {
	Root string // Requested package

	// Order lists the packages with a record, dependencies before
	// dependents. Root is the last element.
	Order []string

	// Levels groups Order into install stages. Every package in Levels[i]
	// only depends on packages in earlier stages.
	Levels [][]string

	// Graph holds every visited name. Packages with a record are
	// dag.NodeKindPackage nodes; the rest are dag.NodeKindExternal.
	// Edges point from a package to its dependencies. Row 0 holds the
	// external nodes, row i+1 the packages of Levels[i].
	Graph *dag.DAG

	// External lists visited names without a record, sorted. These are
	// expected to come from another repository.
	External []string

	// Constrained lists dependencies skipped for carrying a version
	// constraint, in discovery order.
	Constrained []ConstrainedDep

	// Rounds is the number of worklist rounds handed to the fetcher.
	Rounds int

	// Found is false if the metadata service had no record of Root.
	Found bool
}

func (s *session) plan() (*Plan, error) {
	p := &Plan{
		Root:        s.root,
		Graph:       s.graph(),
		Constrained: s.constrained,
		Rounds:      s.rounds,
		Found:       len(s.records) > 0,
	}
	for _, name := range s.visitOrder {
		if _, ok := s.records[name]; !ok {
			p.External = append(p.External, name)
		}
	}
	slices.Sort(p.External)
	s.logger.Debug("dependency graph built", "nodes", p.Graph.NodeCount(), "edges", p.Graph.EdgeCount())

	if !p.Found {
		p.Order = []string{s.root}
		return p, nil
	}

	order, err := installOrder(p.Graph, s.root)
	if err != nil {
		return nil, err
	}
	p.Order = order
	p.Levels = assignLevels(p.Graph, order)
	return p, nil
}

// graph builds the dependency graph: records in discovery order followed
// by external names in visit order.
func (s *session) graph() *dag.DAG {
	g := dag.New(dag.Metadata{"root": s.root})
	for _, name := range s.recordOrder {
		_ = g.AddNode(dag.Node{ID: name, Meta: s.records[name].Metadata()})
	}
	for _, name := range s.visitOrder {
		if _, ok := s.records[name]; !ok {
			_ = g.AddNode(dag.Node{ID: name, Kind: dag.NodeKindExternal})
		}
	}
	for _, name := range s.recordOrder {
		for _, dep := range s.deps[name] {
			_ = g.AddEdge(dag.Edge{From: name, To: dep})
		}
	}
	return g
}
