// Package core defines the central Graph, Vertex, and Edge types for the
// waylith shortest-path engine, plus the Direction and Filter primitives
// consulted by every traversal.
//
// A Graph is built exactly once from externally supplied vertices and
// edges (Build) and is immutable afterwards: no mutation API exists, so a
// built Graph may be shared across concurrent queries without locking.
//
// This file declares Vertex, Edge, Direction, Arc, Filter, and the
// sentinel errors of the package.
//
// Errors:
//
//	ErrNilVertex           - a nil *Vertex was supplied to Build.
//	ErrNilEdge             - a nil *Edge was supplied to Build.
//	ErrDuplicateVertexID   - two input vertices share an ID.
//	ErrDuplicateEdgeID     - two input edges share an ID.
//	ErrInvalidEdgeReference - an edge endpoint names a vertex that does not exist.
//	ErrVertexNotFound      - a query referenced a non-existent vertex.
//	ErrEdgeNotFound        - a query referenced a non-existent edge.
//	ErrInvalidDirection    - a direction value outside {Outgoing, Incoming, Any}.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex in the Build input.
	ErrNilVertex = errors.New("core: nil vertex")

	// ErrNilEdge indicates a nil *Edge in the Build input.
	ErrNilEdge = errors.New("core: nil edge")

	// ErrDuplicateVertexID indicates two input vertices carry the same ID.
	ErrDuplicateVertexID = errors.New("core: duplicate vertex ID")

	// ErrDuplicateEdgeID indicates two input edges carry the same ID.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrInvalidEdgeReference indicates an edge whose From or To names a
	// vertex absent from the input set. Build fails as a whole; no partial
	// graph is ever returned.
	ErrInvalidEdgeReference = errors.New("core: edge references unknown vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidDirection indicates a Direction outside the three defined values.
	ErrInvalidDirection = errors.New("core: invalid direction")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attrs carries arbitrary named attributes (names, labels, coordinates)
// used only for output projection; the engine never interprets them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID int64

	// Attrs stores arbitrary user data, passed through unchanged.
	Attrs map[string]any
}

// Edge represents a directed connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a numeric Weight (for
// example a physical distance), and optional auxiliary attributes.
// Parallel edges between the same endpoints are permitted and distinct.
// Traversal direction is decided per query (see Direction), not per edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int64

	// From is the source vertex ID.
	From int64

	// To is the destination vertex ID.
	To int64

	// Weight is the numeric weight attribute of the edge.
	Weight float64

	// Attrs stores arbitrary user data, passed through unchanged.
	Attrs map[string]any
}

// Direction selects which way along an edge a traversal may move.
type Direction uint8

const (
	// Outgoing traverses edges from their From endpoint to their To endpoint.
	Outgoing Direction = iota

	// Incoming traverses edges in logical reversal, from To back to From.
	Incoming

	// Any traverses an edge in either direction from either endpoint.
	Any
)

// Valid reports whether d is one of the three defined directions.
func (d Direction) Valid() bool { return d <= Any }

// String returns the canonical upper-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "OUTGOING"
	case Incoming:
		return "INCOMING"
	case Any:
		return "ANY"
	default:
		return "INVALID"
	}
}

// ParseDirection converts a direction literal ("OUTGOING", "INCOMING",
// "ANY"; lower-case accepted) into a Direction.
// Unrecognized or empty strings fail with ErrInvalidDirection rather
// than silently defaulting.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "OUTGOING", "outgoing":
		return Outgoing, nil
	case "INCOMING", "incoming":
		return Incoming, nil
	case "ANY", "any":
		return Any, nil
	default:
		return 0, ErrInvalidDirection
	}
}

// Arc is one step of a neighbor lookup: the edge crossed and the vertex
// reached on its far side. For a self-loop Neighbor equals the queried
// vertex.
type Arc struct {
	// Edge is the edge crossed. Treat it as read-only.
	Edge *Edge

	// Neighbor is the vertex reached by crossing Edge from the queried
	// vertex under the requested Direction.
	Neighbor int64
}

// Filter is a call-scoped exclusion set consulted by neighbor lookup.
// It lets a search temporarily suppress edges and vertices without
// mutating the shared Graph. The zero value excludes nothing.
type Filter struct {
	// Edges holds edge IDs that must not be traversed.
	Edges map[int64]struct{}

	// Vertices holds vertex IDs that must not be entered.
	Vertices map[int64]struct{}
}

// BlocksEdge reports whether edge id is excluded by the filter.
func (f Filter) BlocksEdge(id int64) bool {
	_, ok := f.Edges[id]
	return ok
}

// BlocksVertex reports whether vertex id is excluded by the filter.
func (f Filter) BlocksVertex(id int64) bool {
	_, ok := f.Vertices[id]
	return ok
}
