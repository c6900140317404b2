// Package dijkstra defines the cost-evaluator contract, result types and
// configuration options for the waylith best-first shortest-path searches.
//
// Two searches are provided:
//
//	– ShortestPath: single-pair search that terminates the instant the
//	  end vertex is settled.
//	– OneToAll: full single-source run producing a shortest-path Forest
//	  over every reachable vertex.
//
// Both are Dijkstra-class searches and therefore require non-negative
// evaluated costs; a negative evaluation aborts the search with
// ErrNegativeCost and discards all partial results.
//
// Options:
//
//	– WithDirection: traversal orientation (core.Outgoing by default).
//	– WithMaxCost:   accumulated-cost cap; branches beyond it are not explored.
//	– WithBaseCost:  accumulated cost already incurred before the start
//	                 vertex; seeds the evaluator and the resulting weights.
//	– WithFilter:    call-scoped edge/vertex exclusions (core.Filter).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNilCost         if no cost evaluator is provided.
//	– ErrVertexNotFound  if the start, end or source vertex does not exist.
//	– ErrNegativeCost    if the evaluator returns a negative cost.
//	– ErrBadMaxCost      if WithMaxCost is given a negative or NaN value.
//	– ErrBadBaseCost     if WithBaseCost is given a negative or NaN value.
package dijkstra

import (
	"errors"
	"math"

	"github.com/veydrin/waylith/core"
)

// Sentinel errors returned by the search implementations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilCost indicates that a nil CostFunc was passed in.
	ErrNilCost = errors.New("dijkstra: cost evaluator is nil")

	// ErrVertexNotFound indicates that a start, end or source vertex does
	// not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeCost indicates that the cost evaluator returned a negative
	// cost, violating the non-negative-weight contract the searches depend
	// on. The offending search is aborted and partial results discarded.
	ErrNegativeCost = errors.New("dijkstra: negative evaluated cost")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative or NaN
	// value, which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadBaseCost indicates that WithBaseCost was given a negative or
	// NaN value; an accumulated cost can never be negative.
	ErrBadBaseCost = errors.New("dijkstra: BaseCost must be non-negative")
)

// CostFunc is the pluggable cost evaluator threaded through every search.
//
// It maps an edge plus the accumulated cost of the path state offering
// that edge to either a finite non-negative cost (cost, true) or an
// abort signal (_, false). Abort means: do not traverse this edge from
// this path state — the search treats the edge as absent for this branch
// only, never excluding it globally. Because accumulated cost differs
// per path, the evaluator is re-consulted fresh each time the edge is
// offered.
//
// Evaluators must be pure: same edge and accumulated cost, same answer.
// A negative returned cost is a contract violation (ErrNegativeCost).
type CostFunc func(e *core.Edge, acc float64) (cost float64, ok bool)

// Weight is the edge-weight-only evaluator: every edge is traversable at
// its raw Weight attribute.
func Weight(e *core.Edge, _ float64) (float64, bool) { return e.Weight, true }

// Path is a weighted path: the ordered vertex sequence, the ordered IDs
// of the edges connecting them (len(Edges) == len(Vertices)-1), and the
// cumulative evaluated Weight. The degenerate single-vertex path (start
// equals end) has no edges and weight 0.
type Path struct {
	// Vertices is the ordered vertex ID sequence, start first.
	Vertices []int64

	// Edges is the ordered edge ID sequence connecting Vertices.
	Edges []int64

	// Weight is the sum of per-edge evaluated costs along the path
	// (plus the BaseCost option, when set).
	Weight float64
}

// Len returns the number of edges in the path.
func (p *Path) Len() int { return len(p.Edges) }

// Entry is one node of a shortest-path Forest: the minimal cumulative
// cost at which a vertex was settled, and the edge and vertex through
// which it was reached. The source vertex has Pred == nil and PredVertex
// equal to itself.
type Entry struct {
	// Cost is the final cumulative evaluated cost from the source.
	Cost float64

	// Pred is the edge through which the vertex was reached; nil for the
	// source.
	Pred *core.Edge

	// PredVertex is the settled vertex on the near side of Pred. Kept
	// explicitly because under core.Any an edge alone does not identify
	// the traversal direction.
	PredVertex int64
}

// Forest is the one-to-all result: for every reachable vertex, its Entry.
// Unreachable vertices are absent, never present with a sentinel cost.
type Forest struct {
	// Source is the vertex the search started from.
	Source int64

	// Nodes maps reachable vertex ID → Entry.
	Nodes map[int64]Entry
}

// Reconstruct rebuilds the shortest path from the forest's source to
// target by walking predecessor links. It returns nil when target is not
// present in the forest (unreachable or unknown).
//
// Complexity: O(length of the reconstructed path).
func (f Forest) Reconstruct(target int64) *Path {
	entry, ok := f.Nodes[target]
	if !ok {
		return nil
	}

	p := &Path{Weight: entry.Cost}

	// Walk back to the source collecting vertices and edges in reverse.
	cur := target
	for cur != f.Source {
		e := f.Nodes[cur]
		p.Vertices = append(p.Vertices, cur)
		p.Edges = append(p.Edges, e.Pred.ID)
		cur = e.PredVertex
	}
	p.Vertices = append(p.Vertices, f.Source)

	// Reverse both sequences in place to run source → target.
	for i, j := 0, len(p.Vertices)-1; i < j; i, j = i+1, j-1 {
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
	for i, j := 0, len(p.Edges)-1; i < j; i, j = i+1, j-1 {
		p.Edges[i], p.Edges[j] = p.Edges[j], p.Edges[i]
	}

	return p
}

// Options configures a single search invocation.
//
// Direction – traversal orientation (default core.Outgoing).
// MaxCost   – accumulated-cost cap; must be ≥ 0. Default +Inf (no cap).
// BaseCost  – accumulated cost before the start vertex; must be ≥ 0.
//
//	Default 0. Fed to the evaluator and included in result weights.
//
// Filter    – call-scoped exclusion set; default excludes nothing.
type Options struct {
	Direction core.Direction // traversal orientation
	MaxCost   float64        // cap on accumulated cost
	BaseCost  float64        // accumulated cost seeded at the start vertex
	Filter    core.Filter    // call-scoped edge/vertex exclusions
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithDirection sets the traversal orientation for the whole search.
// Validity is checked by the search itself (core.ErrInvalidDirection).
func WithDirection(dir core.Direction) Option {
	return func(o *Options) { o.Direction = dir }
}

// WithMaxCost caps the accumulated cost: branches whose cost would
// exceed max are not explored and vertices beyond it are never settled.
// Must be non-negative; invalid values panic with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithBaseCost seeds the search with an accumulated cost already
// incurred before the start vertex. Yen's deviation search uses this to
// evaluate spur edges against the true root-prefix cost.
// Must be non-negative; invalid values panic with ErrBadBaseCost.
func WithBaseCost(base float64) Option {
	return func(o *Options) {
		if base < 0 || math.IsNaN(base) {
			panic(ErrBadBaseCost.Error())
		}
		o.BaseCost = base
	}
}

// WithFilter supplies a call-scoped exclusion set consulted during
// neighbor expansion. The shared Graph is never mutated.
func WithFilter(f core.Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// DefaultOptions returns the Options a search starts from before
// functional options are applied: Outgoing direction, no cost cap, zero
// base cost, empty filter.
func DefaultOptions() Options {
	return Options{
		Direction: core.Outgoing,
		MaxCost:   math.Inf(1),
		BaseCost:  0,
	}
}
