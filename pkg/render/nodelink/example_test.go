package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/aurorder/pkg/dag"
	"github.com/matzehuels/aurorder/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "paru"})
	_ = g.AddNode(dag.Node{ID: "cargo", Kind: dag.NodeKindExternal})
	_ = g.AddEdge(dag.Edge{From: "paru", To: "cargo"})

	dot := nodelink.ToDOT(g, nodelink.Options{HideExternal: true})
	fmt.Print(dot)
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=24, margin="0.2,0.1"];
	//   ranksep=0.5;
	//   nodesep=0.3;
	//
	//   "paru" [label="paru"];
	//
	// }
}
