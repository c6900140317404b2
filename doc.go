// Package waylith is an in-memory weighted shortest-path engine:
// build a graph once, then query it from as many goroutines as you like.
//
// What it does:
//
//   - Core primitives: immutable Graph built from externally loaded
//     vertices and edges, with direction-aware neighbor lookup
//   - Single-pair shortest path: best-first search with early exit
//   - Single-source shortest-path tree: one-to-all Dijkstra producing a
//     predecessor forest
//   - Top-K shortest simple paths: Yen's deviation search with
//     call-scoped pruning
//
// Every search threads a pluggable cost evaluator that maps an edge and
// the accumulated path cost to either a finite non-negative cost or an
// abort signal for that branch, so per-query routing policy lives in the
// caller, not in the graph.
//
// Everything is organized under three subpackages:
//
//	core/     — Graph, Vertex, Edge, Direction, Filter; build & lookup
//	dijkstra/ — cost evaluator contract, ShortestPath, OneToAll, Forest
//	yen/      — KShortest, the top-K simple-paths enumeration
//
// Quick ASCII example:
//
//	    1 ──5── 2
//	     \      │
//	      20    5
//	       \    │
//	        ──► 3
//
//	shortest 1→3 is [1 2 3] at weight 10; the runner-up is [1 3] at 20.
//
// The engine owns no storage, performs no I/O, and never mutates a built
// Graph — queries are independent and safely concurrent.
package waylith
