package deps

import (
	"container/heap"
	"strings"

	"github.com/matzehuels/aurorder/pkg/dag"
	apperrors "github.com/matzehuels/aurorder/pkg/errors"
)

// installOrder topologically sorts the package nodes of g so that every
// package follows its dependencies. External nodes are treated as already
// installed.
//
// Among packages whose dependencies are all emitted, the one added to g
// first is emitted next, so the order is a function of discovery order.
func installOrder(g *dag.DAG, root string) ([]string, error) {
	remaining := make(map[string]int)
	ready := &indexHeap{}
	total := 0
	for _, n := range g.Nodes() {
		if n.IsExternal() {
			continue
		}
		total++
		for _, dep := range g.Children(n.ID) {
			if d, _ := g.Node(dep); !d.IsExternal() {
				remaining[n.ID]++
			}
		}
		if remaining[n.ID] == 0 {
			heap.Push(ready, g.Index(n.ID))
		}
	}

	nodes := g.Nodes()
	order := make([]string, 0, total)
	for ready.Len() > 0 {
		id := nodes[heap.Pop(ready).(int)].ID
		order = append(order, id)
		for _, parent := range g.Parents(id) {
			remaining[parent]--
			if remaining[parent] == 0 {
				heap.Push(ready, g.Index(parent))
			}
		}
	}

	if len(order) < total {
		cycle := dag.FindCycle(g)
		if len(cycle) == 0 {
			return nil, apperrors.New(apperrors.ErrCodeInternal,
				"ordering stalled after %d of %d packages without a cycle", len(order), total)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeCircularDependency, dag.ErrGraphHasCycle,
			"dependency cycle: %s", strings.Join(append(cycle, cycle[0]), " -> "))
	}
	if len(order) == 0 || order[len(order)-1] != root {
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"install order does not end with %s", root)
	}
	return order, nil
}

// assignLevels sets each node's row to its install stage and returns the
// packages grouped by stage. External nodes stay in row 0; a package
// without package dependencies is in row 1.
func assignLevels(g *dag.DAG, order []string) [][]string {
	rows := make(map[string]int, g.NodeCount())
	var levels [][]string
	for _, id := range order {
		row := 1
		for _, dep := range g.Children(id) {
			row = max(row, rows[dep]+1)
		}
		rows[id] = row
		if row > len(levels) {
			levels = append(levels, nil)
		}
		levels[row-1] = append(levels[row-1], id)
	}
	for _, n := range g.Nodes() {
		if n.IsExternal() {
			rows[n.ID] = 0
		}
	}
	g.SetRows(rows)
	return levels
}

// indexHeap is a min-heap of node insertion indices.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *indexHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
