// File: graph.go
// Role: Graph construction (Build) and basic lookup APIs.
// Determinism:
//   - Adjacency lists are sorted by Edge.ID asc at build time.
//   - VertexIDs() and EdgeIDs() return IDs sorted asc.
// Concurrency:
//   - A built Graph is immutable; all methods are safe for concurrent use.

package core

import (
	"fmt"
	"sort"
)

// Graph is the immutable in-memory graph store.
//
// It is constructed exactly once by Build and queried for the rest of its
// lifetime. Derived adjacency indices (outgoing-edges-by-vertex,
// incoming-edges-by-vertex) are computed at build time and stay
// consistent with the edge set forever, because no mutation API exists.
type Graph struct {
	vertices map[int64]*Vertex // vertex ID → Vertex
	edges    map[int64]*Edge   // edge ID → Edge

	out map[int64][]*Edge // vertex ID → outgoing edges, sorted by Edge.ID asc
	in  map[int64][]*Edge // vertex ID → incoming edges, sorted by Edge.ID asc
}

// Build assembles a Graph from the supplied vertices and edges.
//
// Validation (in order, fail fast, no partial graph returned):
//  1. Every vertex must be non-nil (ErrNilVertex) and carry a unique ID
//     (ErrDuplicateVertexID).
//  2. Every edge must be non-nil (ErrNilEdge) and carry a unique ID
//     (ErrDuplicateEdgeID).
//  3. Every edge endpoint must reference an existing vertex
//     (ErrInvalidEdgeReference).
//
// The input slices are not retained; the Vertex and Edge pointers are.
// Callers must not mutate them after Build returns.
//
// Complexity: O(V + E log E) — adjacency lists are sorted by edge ID so
// neighbor iteration order is deterministic.
func Build(vertices []*Vertex, edges []*Edge) (*Graph, error) {
	g := &Graph{
		vertices: make(map[int64]*Vertex, len(vertices)),
		edges:    make(map[int64]*Edge, len(edges)),
		out:      make(map[int64][]*Edge),
		in:       make(map[int64][]*Edge),
	}

	// 1) Index vertices, rejecting nils and duplicate IDs.
	for _, v := range vertices {
		if v == nil {
			return nil, ErrNilVertex
		}
		if _, dup := g.vertices[v.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertexID, v.ID)
		}
		g.vertices[v.ID] = v
	}

	// 2) Index edges and fill both adjacency sides.
	for _, e := range edges {
		if e == nil {
			return nil, ErrNilEdge
		}
		if _, dup := g.edges[e.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateEdgeID, e.ID)
		}
		if _, ok := g.vertices[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %d: from=%d", ErrInvalidEdgeReference, e.ID, e.From)
		}
		if _, ok := g.vertices[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %d: to=%d", ErrInvalidEdgeReference, e.ID, e.To)
		}
		g.edges[e.ID] = e
		g.out[e.From] = append(g.out[e.From], e)
		g.in[e.To] = append(g.in[e.To], e)
	}

	// 3) Fix iteration order once, so every later neighbor scan is
	//    deterministic regardless of input order.
	for _, list := range g.out {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
	for _, list := range g.in {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	return g, nil
}

// HasVertex reports whether the graph contains a vertex with the given ID.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
//
// Complexity: O(1)
func (g *Graph) Vertex(id int64) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v, nil
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
//
// Complexity: O(1)
func (g *Graph) Edge(id int64) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return e, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// VertexIDs returns all vertex IDs sorted ascending.
//
// Complexity: O(V log V)
func (g *Graph) VertexIDs() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// EdgeIDs returns all edge IDs sorted ascending.
//
// Complexity: O(E log E)
func (g *Graph) EdgeIDs() []int64 {
	ids := make([]int64, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
