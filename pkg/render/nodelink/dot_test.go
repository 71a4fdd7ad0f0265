package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/aurorder/pkg/dag"
)

func sample() *dag.DAG {
	g := dag.New(dag.Metadata{"root": "yay"})
	g.AddNode(dag.Node{ID: "yay", Row: 2, Meta: dag.Metadata{"version": "12.3.5-1"}})
	g.AddNode(dag.Node{ID: "yay-helper", Row: 1})
	g.AddNode(dag.Node{ID: "libfoo", Row: 1})
	g.AddNode(dag.Node{ID: "git", Kind: dag.NodeKindExternal})
	g.AddEdge(dag.Edge{From: "yay", To: "yay-helper"})
	g.AddEdge(dag.Edge{From: "yay", To: "libfoo"})
	g.AddEdge(dag.Edge{From: "yay", To: "git"})
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, id := range []string{`"yay"`, `"yay-helper"`, `"git"`} {
		if !strings.Contains(dot, id) {
			t.Errorf("ToDOT() output missing node %s", id)
		}
	}
	if !strings.Contains(dot, `"yay" -> "yay-helper"`) {
		t.Error("ToDOT() output missing edge")
	}
	if !strings.Contains(dot, `{ rank=same; "yay-helper"; "libfoo"; }`) {
		t.Error("ToDOT() output missing rank group for stage 1")
	}
}

func TestToDOT_Styles(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	for _, line := range strings.Split(dot, "\n") {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), `"git" [`):
			if !strings.Contains(line, "dashed") {
				t.Errorf("external node not dashed: %s", line)
			}
		case strings.HasPrefix(strings.TrimSpace(line), `"yay" [`):
			if !strings.Contains(line, "penwidth=3") {
				t.Errorf("root node not highlighted: %s", line)
			}
		}
	}
}

func TestToDOT_HideExternal(t *testing.T) {
	dot := ToDOT(sample(), Options{HideExternal: true})

	if strings.Contains(dot, `"git"`) {
		t.Error("ToDOT() should leave out external nodes")
	}
	if !strings.Contains(dot, `"yay" -> "libfoo"`) {
		t.Error("ToDOT() dropped an AUR edge")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sample(), Options{Detailed: true})

	if !strings.Contains(dot, `stage: 2\nversion: 12.3.5-1`) {
		t.Error("ToDOT() detailed output missing stage or metadata")
	}
}

func TestFmtLabel(t *testing.T) {
	tests := []struct {
		name     string
		node     dag.Node
		detailed bool
		want     string
	}{
		{"simple", dag.Node{ID: "pkg", Row: 1}, false, "pkg"},
		{"detailed", dag.Node{ID: "pkg", Row: 1, Meta: dag.Metadata{"version": "1.0"}}, true, "pkg\nstage: 1\nversion: 1.0"},
		{"external", dag.Node{ID: "glibc", Kind: dag.NodeKindExternal}, true, "glibc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtLabel(tt.node, tt.detailed); got != tt.want {
				t.Errorf("fmtLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.50 200.00" width="100" height="200"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
