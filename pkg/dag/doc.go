// Package dag provides the dependency graph built while resolving an AUR
// package.
//
// # Overview
//
// Nodes are package names and an edge From -> To means From depends on To.
// Packages that have a record in the AUR are [NodeKindPackage] nodes; names
// that only appear as dependencies (typically packages from the official
// repositories) are [NodeKindExternal] nodes.
//
// The graph remembers insertion order. [DAG.Nodes], [DAG.Children],
// [DAG.Parents] and the other listings all follow it, which keeps every
// algorithm on top of the graph deterministic.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "yay"})
//	g.AddNode(dag.Node{ID: "go", Kind: dag.NodeKindExternal})
//	g.AddEdge(dag.Edge{From: "yay", To: "go"})
//
// # Cycles
//
// The graph accepts cycles so that a resolver can report them instead of
// failing while building. [FindCycle] returns the members of one cycle
// using depth-first search with white/gray/black coloring, and
// [DAG.Validate] turns that into [ErrGraphHasCycle].
//
// # Rows
//
// [DAG.SetRows] assigns each node an install stage. A package in row n only
// depends on packages in rows below n, so all packages of one row could be
// built in parallel once the previous rows are installed.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use.
package dag
