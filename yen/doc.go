// Package yen enumerates the top-K shortest simple (loopless) paths
// between two vertices of an immutable core.Graph.
//
// Overview:
//
//   - KShortest(g, start, end, k, cost, opts...) returns at most k paths
//     in non-decreasing weight order, ties broken by acceptance order,
//     each distinct by exact edge sequence. Its first element equals the
//     plain single-pair optimum whenever one exists.
//   - The algorithm is Yen's deviation search: every position of the most
//     recently accepted path becomes a spur vertex, and a nested
//     dijkstra.ShortestPath runs on a graph pruned of (a) the edges other
//     accepted paths use at that position under the same vertex prefix
//     and (b) the prefix vertices themselves.
//   - Pruning travels as a call-scoped core.Filter through neighbor
//     lookup; the shared Graph is never mutated, so concurrent KShortest
//     calls over one graph are safe. Within a single call the nested
//     searches are sequential — each depends on the pruning state derived
//     from the previously accepted path.
//
// Soft results:
//
//   - Fewer than k simple paths exist: the shorter list is returned
//     silently. No path at all: the empty list. k ≤ 0: the empty list.
//
// Cost evaluators that depend on accumulated cost are fully supported:
// every spur search is seeded with its root prefix cost, so each edge is
// evaluated against the true accumulated cost of the candidate being
// built.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilCost: missing inputs.
//   - ErrVertexNotFound: start or end absent from the graph.
//   - core.ErrInvalidDirection: direction outside the defined values.
//   - dijkstra.ErrNegativeCost: propagated from a nested search; the
//     whole call is aborted, partial results discarded.
//
// See also:
//
//   - dijkstra: the single-pair search this package builds on.
package yen
