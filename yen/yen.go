// Package yen implements Yen's algorithm for enumerating the K shortest
// simple (loopless) paths between two vertices.
//
// The search is a deviation scheme layered on repeated calls to
// dijkstra.ShortestPath: for each position along the most recently
// accepted path, a "spur" search is run on a temporarily pruned graph —
// edges already used at that position by accepted paths sharing the same
// vertex prefix are suppressed, as are the prefix vertices themselves,
// so no candidate can loop back into its own root. Pruning is scoped to
// the one nested search via a core.Filter; the shared Graph is never
// mutated.
//
// Complexity: O(K · V · (V + E) log V) worst case — K·V nested
// single-pair searches. Space: O(K · V) for accepted and candidate paths.
package yen

import (
	"container/heap"
	"fmt"
	"strconv"
	"strings"

	"github.com/veydrin/waylith/core"
	"github.com/veydrin/waylith/dijkstra"
)

// KShortest returns up to k minimum-cost simple paths from start to end,
// ordered by non-decreasing weight with ties in acceptance order. Paths
// are distinct by exact edge sequence.
//
// Fewer than k paths — including zero when the vertices are disconnected
// — is a valid partial result, not an error. k ≤ 0 yields an empty
// result. The first returned path always equals
// dijkstra.ShortestPath(g, start, end, ...) when one exists.
//
// The call is incremental by nature: bounding work is achieved through k
// and graph size; callers wanting an external budget simply pass a
// smaller k.
//
// Errors: ErrNilGraph, ErrNilCost, ErrVertexNotFound (start or end),
// core.ErrInvalidDirection, dijkstra.ErrNegativeCost (propagated from a
// nested search; partial results discarded).
func KShortest(g *core.Graph, start, end int64, k int, cost dijkstra.CostFunc, opts ...Option) ([]*dijkstra.Path, error) {
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
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %d", ErrVertexNotFound, end)
	}
	if k <= 0 {
		return nil, nil
	}

	// Path 1: the plain single-pair optimum seeds the accepted list.
	first, err := dijkstra.ShortestPath(g, start, end, cost, dijkstra.WithDirection(cfg.Direction))
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, nil
	}

	accepted := []*dijkstra.Path{first}
	// seen guards candidate identity: the exact edge-ID sequence, covering
	// both accepted paths and everything already in the candidate heap.
	seen := map[string]struct{}{pathKey(first): {}}

	var candidates candidatePQ
	heap.Init(&candidates)
	var seq uint64

	for len(accepted) < k {
		p := accepted[len(accepted)-1]

		// prefixCost tracks the accumulated evaluated cost of p's root
		// prefix [0..i), re-derived edge by edge; the evaluator is pure, so
		// these match the values under which p was originally accepted.
		prefixCost := 0.0

		for i := 0; i < p.Len(); i++ {
			spur := p.Vertices[i]

			filter := core.Filter{
				Edges:    make(map[int64]struct{}),
				Vertices: make(map[int64]struct{}),
			}
			// (a) Suppress the i-th edge of every accepted path that shares
			// p's vertex prefix [0..i], forcing the spur search to deviate.
			for _, q := range accepted {
				if q.Len() > i && samePrefix(q, p, i) {
					filter.Edges[q.Edges[i]] = struct{}{}
				}
			}
			// (b) Suppress the shared prefix vertices other than the spur
			// itself, so the candidate stays simple.
			for j := 0; j < i; j++ {
				filter.Vertices[p.Vertices[j]] = struct{}{}
			}

			spurPath, sErr := dijkstra.ShortestPath(g, spur, end, cost,
				dijkstra.WithDirection(cfg.Direction),
				dijkstra.WithBaseCost(prefixCost),
				dijkstra.WithFilter(filter),
			)
			if sErr != nil {
				return nil, sErr
			}
			if spurPath != nil {
				cand := splice(p, i, spurPath)
				key := pathKey(cand)
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					seq++
					heap.Push(&candidates, &candidate{path: cand, seq: seq})
				}
			}

			// Advance the prefix cost across root edge i for the next spur.
			e, eErr := g.Edge(p.Edges[i])
			if eErr != nil {
				return nil, eErr
			}
			w, traversable := cost(e, prefixCost)
			if !traversable {
				// Unreachable for a pure evaluator: p was accepted under the
				// very same (edge, accumulated cost) evaluations. Stop
				// extending this root rather than fabricating a prefix cost.
				break
			}
			prefixCost += w
		}

		if candidates.Len() == 0 {
			break
		}
		next := heap.Pop(&candidates).(*candidate)
		accepted = append(accepted, next.path)
	}

	return accepted, nil
}

// samePrefix reports whether a and b visit the identical vertex sequence
// through position i inclusive.
func samePrefix(a, b *dijkstra.Path, i int) bool {
	for j := 0; j <= i; j++ {
		if a.Vertices[j] != b.Vertices[j] {
			return false
		}
	}

	return true
}

// splice joins root-path p[0..i] with a spur path starting at
// p.Vertices[i]. The spur path's weight already includes the root prefix
// cost (seeded via WithBaseCost), so it is the candidate's total weight.
func splice(p *dijkstra.Path, i int, spur *dijkstra.Path) *dijkstra.Path {
	cand := &dijkstra.Path{
		Vertices: make([]int64, 0, i+len(spur.Vertices)),
		Edges:    make([]int64, 0, i+len(spur.Edges)),
		Weight:   spur.Weight,
	}
	cand.Vertices = append(cand.Vertices, p.Vertices[:i]...)
	cand.Vertices = append(cand.Vertices, spur.Vertices...)
	cand.Edges = append(cand.Edges, p.Edges[:i]...)
	cand.Edges = append(cand.Edges, spur.Edges...)

	return cand
}

// pathKey renders a path's identity: its exact edge-ID sequence.
func pathKey(p *dijkstra.Path) string {
	var b strings.Builder
	for idx, id := range p.Edges {
		if idx > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}

	return b.String()
}

// candidate is one pending deviation path with its discovery sequence.
type candidate struct {
	path *dijkstra.Path
	seq  uint64
}

// candidatePQ is a min-heap of *candidate ordered by (weight asc,
// discovery order asc), so equal-weight candidates are accepted in the
// order they were found.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].path.Weight != pq[j].path.Weight {
		return pq[i].path.Weight < pq[j].path.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x any) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
