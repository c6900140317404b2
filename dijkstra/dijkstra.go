// Package dijkstra implements the waylith best-first shortest-path
// searches: single-pair (ShortestPath) and single-source one-to-all
// (OneToAll).
//
// Both run Dijkstra's algorithm keyed by accumulated evaluated cost,
// expanding the lowest-cost unsettled vertex first. Edge costs come from
// a caller-supplied CostFunc, which may also abort individual branches.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the cost and predecessor maps.
//   - O(E) worst-case heap entries under "lazy decrease-key".
//
// Determinism:
//
//   - Ties are broken by discovery order: relaxation improves strictly
//     (newCost < cost[v]), so the first-discovered path of equal cost
//     keeps its predecessor, and the heap orders equal-cost entries by a
//     monotone insertion sequence. Combined with the graph's edge-ID
//     sorted adjacency, repeated runs yield identical results.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/veydrin/waylith/core"
)

// ShortestPath computes the minimum-cost path from start to end under
// the configured direction and the supplied cost evaluator.
//
// Returns:
//
//   - (*Path, nil) when a path exists. If start equals end, the result is
//     the length-0 path with weight 0 (plus BaseCost), produced without
//     traversing any edge.
//   - (nil, nil) when both vertices exist but no path connects them under
//     the given direction, evaluator, filter and cost cap. "No path" is a
//     valid empty result, not an error.
//   - (nil, err) on invalid input or an evaluator contract violation.
//
// The search terminates the instant the end vertex is settled, an
// optimization over running the full one-to-all sweep.
//
// Errors: ErrNilGraph, ErrNilCost, ErrVertexNotFound (start or end),
// core.ErrInvalidDirection, ErrNegativeCost.
func ShortestPath(g *core.Graph, start, end int64, cost CostFunc, opts ...Option) (*Path, error) {
	r, err := newRunner(g, cost, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %d", ErrVertexNotFound, end)
	}

	// Degenerate single-vertex path: no edge is ever evaluated.
	if start == end {
		return &Path{Vertices: []int64{start}, Weight: r.opts.BaseCost}, nil
	}

	settled, err := r.run(start, end, true)
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, nil
	}

	return r.pathTo(start, end), nil
}

// OneToAll runs Dijkstra from source to completion (queue exhausted),
// recording for every settled vertex its final cumulative cost and the
// edge through which it was reached.
//
// The returned Forest contains exactly the reachable vertices — the
// source with cost 0 and no predecessor edge, everything unreachable
// absent. Path reconstruction is the caller's job via Forest.Reconstruct;
// it is not precomputed per vertex.
//
// Errors: ErrNilGraph, ErrNilCost, ErrVertexNotFound (source),
// core.ErrInvalidDirection, ErrNegativeCost (partial results discarded).
func OneToAll(g *core.Graph, source int64, cost CostFunc, opts ...Option) (Forest, error) {
	r, err := newRunner(g, cost, opts)
	if err != nil {
		return Forest{}, err
	}
	if !g.HasVertex(source) {
		return Forest{}, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	if _, err = r.run(source, 0, false); err != nil {
		return Forest{}, err
	}

	forest := Forest{Source: source, Nodes: make(map[int64]Entry, len(r.settled))}
	for v := range r.settled {
		forest.Nodes[v] = Entry{
			Cost:       r.dist[v],
			Pred:       r.predEdge[v], // nil for the source
			PredVertex: r.predVert[v],
		}
	}

	return forest, nil
}

// runner holds the mutable state of a single search execution. Each
// invocation builds its own runner, so concurrent searches over one
// shared Graph never share mutable state.
type runner struct {
	g    *core.Graph
	cost CostFunc
	opts Options

	dist     map[int64]float64    // vertex → best known accumulated cost
	predEdge map[int64]*core.Edge // vertex → edge it was reached through
	predVert map[int64]int64      // vertex → settled vertex on the near side
	settled  map[int64]struct{}   // vertices with finalized cost
	pq       costPQ               // lazy-decrease-key min-heap
	seq      uint64               // monotone push counter, breaks cost ties
}

// newRunner validates the call-independent inputs and assembles a fresh
// runner. Vertex existence is checked by the entry points, which know
// which identifiers they were given.
func newRunner(g *core.Graph, cost CostFunc, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if !cfg.Direction.Valid() {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidDirection, uint8(cfg.Direction))
	}

	return &runner{
		g:        g,
		cost:     cost,
		opts:     cfg,
		dist:     make(map[int64]float64),
		predEdge: make(map[int64]*core.Edge),
		predVert: make(map[int64]int64),
		settled:  make(map[int64]struct{}),
	}, nil
}

// run is the main Dijkstra loop. With hasTarget it returns as soon as
// target is settled (reporting whether it was); otherwise it drains the
// queue. Vertices are settled in non-decreasing cost order; once settled
// a vertex is never revisited (non-negative-weight invariant).
func (r *runner) run(start, target int64, hasTarget bool) (bool, error) {
	r.dist[start] = r.opts.BaseCost
	r.predVert[start] = start
	heap.Init(&r.pq)
	r.push(start, r.opts.BaseCost)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)

		// Stale entry from lazy decrease-key: the vertex was settled at a
		// lower cost already.
		if _, done := r.settled[item.vertex]; done {
			continue
		}

		// Everything still queued costs at least this much; beyond the cap
		// nothing else can be settled.
		if item.cost > r.opts.MaxCost {
			break
		}

		r.settled[item.vertex] = struct{}{}

		if hasTarget && item.vertex == target {
			return true, nil
		}

		if err := r.relax(item.vertex, item.cost); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax offers every arc out of u to the evaluator at u's final
// accumulated cost and records strict improvements.
func (r *runner) relax(u int64, du float64) error {
	arcs, err := r.g.NeighborsUnder(u, r.opts.Direction, r.opts.Filter)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, a := range arcs {
		w, ok := r.cost(a.Edge, du)
		if !ok {
			// Abort signal: the edge is absent for this branch only. It will
			// be offered again, fresh, from any other path state.
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d cost=%v", ErrNegativeCost, a.Edge.ID, w)
		}

		nd := du + w
		if nd > r.opts.MaxCost {
			continue
		}

		// Strict improvement only: on equal cost the first-discovered
		// predecessor wins, keeping results deterministic.
		if cur, seen := r.dist[a.Neighbor]; seen && nd >= cur {
			continue
		}

		r.dist[a.Neighbor] = nd
		r.predEdge[a.Neighbor] = a.Edge
		r.predVert[a.Neighbor] = u
		r.push(a.Neighbor, nd)
	}

	return nil
}

// pathTo rebuilds the settled start→end path from the predecessor maps.
func (r *runner) pathTo(start, end int64) *Path {
	p := &Path{Weight: r.dist[end]}

	for cur := end; cur != start; cur = r.predVert[cur] {
		p.Vertices = append(p.Vertices, cur)
		p.Edges = append(p.Edges, r.predEdge[cur].ID)
	}
	p.Vertices = append(p.Vertices, start)

	for i, j := 0, len(p.Vertices)-1; i < j; i, j = i+1, j-1 {
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
	for i, j := 0, len(p.Edges)-1; i < j; i, j = i+1, j-1 {
		p.Edges[i], p.Edges[j] = p.Edges[j], p.Edges[i]
	}

	return p
}

// push appends a heap entry stamped with the next insertion sequence.
func (r *runner) push(v int64, cost float64) {
	r.seq++
	heap.Push(&r.pq, &costItem{vertex: v, cost: cost, seq: r.seq})
}

// costItem is one heap entry: a vertex, its candidate accumulated cost,
// and the insertion sequence used to break cost ties deterministically.
type costItem struct {
	vertex int64
	cost   float64
	seq    uint64
}

// costPQ is a min-heap of *costItem ordered by (cost asc, seq asc).
// Lazy decrease-key: improved costs push fresh entries; stale ones are
// skipped on pop via the settled set.
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x any) { *pq = append(*pq, x.(*costItem)) }

func (pq *costPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
