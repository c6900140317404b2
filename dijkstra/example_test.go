// Package dijkstra_test provides runnable examples for the single-pair
// and one-to-all searches. Each example is runnable via "go test -run
// Example", showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/veydrin/waylith/core"
	"github.com/veydrin/waylith/dijkstra"
)

// ExampleShortestPath demonstrates the single-pair search on a directed
// triangle where the two-hop route beats the direct edge.
func ExampleShortestPath() {
	// 1) Build the graph once: 1→2 (5), 2→3 (5), 1→3 (20).
	g, _ := core.Build(
		[]*core.Vertex{{ID: 1}, {ID: 2}, {ID: 3}},
		[]*core.Edge{
			{ID: 1, From: 1, To: 2, Weight: 5},
			{ID: 2, From: 2, To: 3, Weight: 5},
			{ID: 3, From: 1, To: 3, Weight: 20},
		},
	)

	// 2) Search 1→3 charging every edge its raw weight.
	p, err := dijkstra.ShortestPath(g, 1, 3, dijkstra.Weight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The indirect route wins: 5 + 5 < 20.
	fmt.Printf("vertices=%v weight=%.0f\n", p.Vertices, p.Weight)
	// Output: vertices=[1 2 3] weight=10
}

// ExampleShortestPath_abort shows a cost evaluator pruning a branch: the
// search treats the aborted edge as absent and falls back to the direct
// route, while the edge itself stays in the graph.
func ExampleShortestPath_abort() {
	g, _ := core.Build(
		[]*core.Vertex{{ID: 1}, {ID: 2}, {ID: 3}},
		[]*core.Edge{
			{ID: 1, From: 1, To: 2, Weight: 5},
			{ID: 2, From: 2, To: 3, Weight: 5},
			{ID: 3, From: 1, To: 3, Weight: 20},
		},
	)

	// Refuse the first hop of the otherwise-optimal route.
	avoid := func(e *core.Edge, _ float64) (float64, bool) {
		if e.ID == 1 {
			return 0, false
		}
		return e.Weight, true
	}

	p, _ := dijkstra.ShortestPath(g, 1, 3, avoid)
	fmt.Printf("vertices=%v weight=%.0f\n", p.Vertices, p.Weight)
	// Output: vertices=[1 3] weight=20
}

// ExampleOneToAll demonstrates the full single-source sweep and on-demand
// path reconstruction from the resulting forest.
func ExampleOneToAll() {
	g, _ := core.Build(
		[]*core.Vertex{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		[]*core.Edge{
			{ID: 1, From: 1, To: 2, Weight: 5},
			{ID: 2, From: 2, To: 3, Weight: 5},
			{ID: 3, From: 1, To: 3, Weight: 20},
		},
	)

	forest, err := dijkstra.OneToAll(g, 1, dijkstra.Weight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Vertex 4 is disconnected, so it is simply absent from the forest.
	fmt.Printf("reached=%d cost(3)=%.0f\n", len(forest.Nodes), forest.Nodes[3].Cost)

	// Reconstruction is the caller's choice, per target, on demand.
	p := forest.Reconstruct(3)
	fmt.Printf("path=%v\n", p.Vertices)
	// Output:
	// reached=3 cost(3)=10
	// path=[1 2 3]
}
