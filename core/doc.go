// Package core provides the immutable in-memory graph store underlying
// every waylith path search.
//
// Overview:
//
//   - A Graph is assembled exactly once by Build from externally loaded
//     vertices and edges (for example rows of a tabular dataset) and is
//     never mutated afterwards.
//   - Derived adjacency indices — outgoing-edges-by-vertex and
//     incoming-edges-by-vertex — are computed at build time, sorted by
//     edge ID so all neighbor iteration is deterministic.
//   - Parallel edges between the same endpoints are permitted and kept
//     distinct; traversal orientation is a per-query choice (Direction),
//     not an edge property.
//
// Querying:
//
//   - Neighbors(id, dir) yields (edge, far-side vertex) arcs under
//     Outgoing, Incoming, or Any orientation.
//   - NeighborsUnder adds a call-scoped Filter of excluded edge and
//     vertex IDs, letting a search prune the graph for one call without
//     touching shared state.
//
// Thread safety:
//
//   - Because no mutation API exists, a built Graph is safely shared by
//     any number of concurrent queries without locking.
//
// Error handling (sentinel errors):
//
//   - ErrNilVertex, ErrNilEdge, ErrDuplicateVertexID, ErrDuplicateEdgeID,
//     ErrInvalidEdgeReference: Build-time input validation; Build fails
//     as a whole and returns no partial graph.
//   - ErrVertexNotFound, ErrEdgeNotFound: lookups of absent identifiers.
//   - ErrInvalidDirection: a direction outside {Outgoing, Incoming, Any},
//     including unrecognized literals passed to ParseDirection.
//
// See also:
//
//   - dijkstra: single-pair and one-to-all shortest-path searches.
//   - yen: top-K shortest simple paths.
package core
