package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New(nil)
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("expected ErrDuplicateNodeID, got %v", err)
	}
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("expected ErrInvalidNodeID, got %v", err)
	}

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("node a not found")
	}
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("expected ErrUnknownSourceNode, got %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("expected ErrUnknownTargetNode, got %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge duplicate: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if !g.HasEdge("a", "b") || g.HasEdge("b", "a") {
		t.Error("HasEdge reports wrong direction")
	}
	if got := g.Parents("b"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Parents(b) = %v", got)
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New(nil)
	ids := []string{"zeta", "alpha", "mid", "beta"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "zeta", To: "mid"})
	_ = g.AddEdge(Edge{From: "zeta", To: "alpha"})

	if got := NodeIDs(g.Nodes()); !slices.Equal(got, ids) {
		t.Errorf("Nodes() = %v, want %v", got, ids)
	}
	if got := g.Children("zeta"); !slices.Equal(got, []string{"mid", "alpha"}) {
		t.Errorf("Children(zeta) = %v", got)
	}
	if g.Index("mid") != 2 || g.Index("nope") != -1 {
		t.Errorf("Index: mid=%d nope=%d", g.Index("mid"), g.Index("nope"))
	}
}

func TestSetRows(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "app"})
	_ = g.AddNode(Node{ID: "lib"})
	_ = g.AddNode(Node{ID: "core"})

	g.SetRows(map[string]int{"app": 2, "lib": 1})

	if got := g.RowIDs(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("RowIDs() = %v", got)
	}
	if got := NodeIDs(g.NodesInRow(2)); !slices.Equal(got, []string{"app"}) {
		t.Errorf("NodesInRow(2) = %v", got)
	}
	if g.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", g.RowCount())
	}
}

func TestValidate(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	_ = g.AddEdge(Edge{From: "b", To: "a"})
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
	}
}

func TestNodeKind(t *testing.T) {
	if (Node{ID: "glibc", Kind: NodeKindExternal}).IsExternal() != true {
		t.Error("external node not reported as external")
	}
	if (Node{ID: "yay"}).IsExternal() {
		t.Error("zero kind should be a package")
	}
}

