// Package dijkstra provides the two Dijkstra-class searches of the
// waylith engine: single-pair shortest path and single-source
// shortest-path tree, both driven by a pluggable cost evaluator.
//
// Overview:
//
//   - ShortestPath(g, start, end, cost, opts...) finds one minimum-cost
//     path between two vertices, stopping the instant the end vertex is
//     settled. No connecting path is a nil result, not an error.
//   - OneToAll(g, source, cost, opts...) runs to queue exhaustion and
//     returns a Forest: per reachable vertex, the final cumulative cost
//     and the predecessor edge. Unreachable vertices are simply absent.
//   - Forest.Reconstruct(target) walks predecessor links back to the
//     source to materialize any single path on demand.
//
// The cost evaluator:
//
//   - CostFunc receives each candidate edge together with the accumulated
//     cost of the settling vertex and answers either a finite
//     non-negative cost or an abort signal for that branch.
//   - Abort prunes the edge for the offering path state only; the edge
//     stays in the Graph and is re-evaluated fresh wherever else it is
//     offered.
//   - Weight is the ready-made evaluator that charges every edge its raw
//     weight attribute.
//
// Determinism:
//
//   - Equal-cost ties are broken by discovery order (strict-improvement
//     relaxation plus an insertion-sequence heap tie-break), and neighbor
//     expansion follows the graph's edge-ID-sorted adjacency. Identical
//     inputs give identical paths.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); Space: O(V + E).
//   - ShortestPath usually does much less work than a full sweep because
//     of the early exit on settling the end vertex.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilCost: missing inputs.
//   - ErrVertexNotFound: start, end or source absent from the graph —
//     a hard error, surfaced immediately.
//   - core.ErrInvalidDirection: direction outside the three defined values.
//   - ErrNegativeCost: evaluator contract violation; the search is
//     aborted and partial results are discarded, never returned truncated.
//   - ErrBadMaxCost, ErrBadBaseCost: panics raised by the option
//     constructors on statically invalid arguments.
//
// Thread safety:
//
//   - Each call builds its own private state; any number of searches may
//     run concurrently over one shared immutable core.Graph.
//
// See also:
//
//   - core: graph construction and neighbor lookup.
//   - yen: top-K shortest simple paths layered on ShortestPath.
package dijkstra
