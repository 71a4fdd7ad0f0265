// Package io provides JSON import and export for install plans.
//
// # JSON Format
//
// [WritePlan] produces a single object:
//
//	{
//	  "root": "yay",
//	  "found": true,
//	  "order": ["yay-helper", "yay"],
//	  "levels": [["yay-helper"], ["yay"]],
//	  "external": ["git", "go"],
//	  "constrained": [{"package": "yay", "raw": "pacman>6.1"}],
//	  "rounds": 3,
//	  "graph": {
//	    "nodes": [
//	      {"id": "yay", "row": 2, "meta": {"version": "12.3.5-1"}},
//	      {"id": "yay-helper", "row": 1},
//	      {"id": "git", "kind": "external"}
//	    ],
//	    "edges": [
//	      {"from": "yay", "to": "yay-helper"},
//	      {"from": "yay", "to": "git"}
//	    ]
//	  }
//	}
//
// The "graph" object can also be written and read on its own with
// [WriteJSON] and [ReadJSON].
//
// # Import
//
// [ReadPlan] and [ImportPlan] rebuild a plan, including its graph, so that
// it can be rendered again without querying the AUR:
//
//	p, err := io.ImportPlan("yay.json")
//	dot := nodelink.ToDOT(p.Graph, nodelink.Options{})
package io
