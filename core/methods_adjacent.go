// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborsUnder).
// Determinism:
//   - Arcs are yielded in Edge.ID ascending order within each adjacency
//     side; for Any, the outgoing side is scanned before the incoming side.
// Concurrency:
//   - Pure reads on an immutable Graph; safe for concurrent use.

package core

import "fmt"

// Neighbors returns the arcs reachable from the given vertex under the
// requested direction.
//
// Direction policy:
//   - Outgoing: edges with e.From == id, far side e.To.
//   - Incoming: edges with e.To == id (logical reversal), far side e.From.
//   - Any: the union of both sides, each edge yielded at most once per
//     query — a self-loop sits in both adjacency lists but is reported
//     only from the outgoing scan.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrInvalidDirection: if dir is outside the three defined values.
//
// Complexity: O(d), where d is the degree of the vertex.
func (g *Graph) Neighbors(id int64, dir Direction) ([]Arc, error) {
	return g.NeighborsUnder(id, dir, Filter{})
}

// NeighborsUnder is Neighbors with a call-scoped exclusion filter.
//
// Arcs whose edge is blocked, or whose far-side vertex is blocked, are
// omitted. The filter affects only this call; the Graph itself is never
// mutated. Searches that temporarily suppress edges or vertices (Yen's
// deviation search in particular) thread their exclusions through here.
//
// Complexity: O(d)
func (g *Graph) NeighborsUnder(id int64, dir Direction, filter Filter) ([]Arc, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(dir))
	}
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	var arcs []Arc

	// Outgoing side: id is the From endpoint, far side is To.
	if dir == Outgoing || dir == Any {
		for _, e := range g.out[id] {
			if filter.BlocksEdge(e.ID) || filter.BlocksVertex(e.To) {
				continue
			}
			arcs = append(arcs, Arc{Edge: e, Neighbor: e.To})
		}
	}

	// Incoming side: id is the To endpoint, far side is From.
	if dir == Incoming || dir == Any {
		for _, e := range g.in[id] {
			// A self-loop appears in both lists; under Any it was already
			// yielded by the outgoing scan above.
			if dir == Any && e.From == id {
				continue
			}
			if filter.BlocksEdge(e.ID) || filter.BlocksVertex(e.From) {
				continue
			}
			arcs = append(arcs, Arc{Edge: e, Neighbor: e.From})
		}
	}

	return arcs, nil
}
