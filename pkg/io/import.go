package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/aurorder/pkg/dag"
	"github.com/matzehuels/aurorder/pkg/deps"
)

var kindFromString = map[string]dag.NodeKind{
	"external": dag.NodeKindExternal,
}

// ReadPlan decodes a plan written by [WritePlan].
//
// The graph is rebuilt node by node, so duplicate node IDs, edges naming
// unknown nodes and cycles are reported as errors. A plan without a graph
// section yields a plan whose Graph holds only the ordered packages.
//
// ReadPlan does not close r.
func ReadPlan(r io.Reader) (*deps.Plan, error) {
	var data plan
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Root == "" {
		return nil, fmt.Errorf("decode: plan has no root")
	}

	p := &deps.Plan{
		Root:        data.Root,
		Found:       data.Found,
		Order:       data.Order,
		Levels:      data.Levels,
		External:    data.External,
		Constrained: data.Constrained,
		Rounds:      data.Rounds,
	}

	gd := data.Graph
	if gd == nil {
		gd = &graph{}
		for _, id := range data.Order {
			gd.Nodes = append(gd.Nodes, node{ID: id})
		}
	}
	g, err := decodeGraph(gd)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g.Meta()["root"] = data.Root
	p.Graph = g
	return p, nil
}

// ImportPlan reads a plan from the JSON file at path.
func ImportPlan(path string) (*deps.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}

// ReadJSON decodes a JSON graph written by [WriteJSON].
//
// Each node must have an "id" field. Optional fields:
//   - row: install stage (defaults to 0)
//   - kind: "external" for dependencies without a record
//   - meta: object with arbitrary key-value pairs
//
// Each edge must have "from" and "to" fields that reference node IDs.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.DAG, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return decodeGraph(&data)
}

func decodeGraph(data *graph) (*dag.DAG, error) {
	g := dag.New(nil)
	for _, n := range data.Nodes {
		nd := dag.Node{ID: n.ID, Meta: n.Meta}
		if n.Row != nil {
			nd.Row = *n.Row
		}
		if k, ok := kindFromString[n.Kind]; ok {
			nd.Kind = k
		}
		if err := g.AddNode(nd); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
