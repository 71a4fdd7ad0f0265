package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/aurorder/pkg/dag"
	"github.com/matzehuels/aurorder/pkg/deps"
)

var kindToString = map[dag.NodeKind]string{
	dag.NodeKindExternal: "external",
}

type plan struct {
	Root        string                `json:"root"`
	Found       bool                  `json:"found"`
	Order       []string              `json:"order"`
	Levels      [][]string            `json:"levels,omitempty"`
	External    []string              `json:"external,omitempty"`
	Constrained []deps.ConstrainedDep `json:"constrained,omitempty"`
	Rounds      int                   `json:"rounds"`
	Graph       *graph                `json:"graph,omitempty"`
}

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID   string       `json:"id"`
	Row  *int         `json:"row,omitempty"`
	Kind string       `json:"kind,omitempty"`
	Meta dag.Metadata `json:"meta,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WritePlan encodes an install plan as JSON and writes it to w.
// The output includes the order, install stages, diagnostics and the full
// dependency graph. It can be re-imported with [ReadPlan].
func WritePlan(p *deps.Plan, w io.Writer) error {
	out := plan{
		Root:        p.Root,
		Found:       p.Found,
		Order:       p.Order,
		Levels:      p.Levels,
		External:    p.External,
		Constrained: p.Constrained,
		Rounds:      p.Rounds,
	}
	if p.Graph != nil {
		out.Graph = encodeGraph(p.Graph)
	}
	return encode(w, out)
}

// ExportPlan writes an install plan to a JSON file at path.
func ExportPlan(p *deps.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(p, f)
}

// WriteJSON encodes a dependency graph as JSON and writes it to w.
// The output includes all nodes (with row, kind and metadata) and edges.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	return encode(w, encodeGraph(g))
}

func encodeGraph(g *dag.DAG) *graph {
	nodes, edges := g.Nodes(), g.Edges()
	out := &graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}
	for i, n := range nodes {
		nd := node{ID: n.ID, Meta: n.Meta}
		if n.Row != 0 {
			row := n.Row
			nd.Row = &row
		}
		if s, ok := kindToString[n.Kind]; ok {
			nd.Kind = s
		}
		out.Nodes[i] = nd
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To}
	}
	return out
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
