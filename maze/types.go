// Package maze declares the Vertex and Edge value types and the sentinel
// errors shared by every Maze operation.
package maze

import (
	"errors"
	"fmt"
)

// ErrVertexNotFound indicates an operation referenced a vertex that is not a
// member of the maze.
var ErrVertexNotFound = errors.New("maze: vertex not found")

// Vertex identifies a node of the maze. Two vertices are the same node iff
// their IDs are equal; a Vertex is usable as a map key as-is.
type Vertex int64

// String renders the vertex as its bare decimal ID, matching the legacy text
// format owned by package mazetxt.
func (v Vertex) String() string { return fmt.Sprintf("%d", int64(v)) }

// Edge is an unordered pair of vertices. The constructor normalizes the pair
// so that A <= B; two edges over the same endpoints compare equal under ==
// regardless of argument order, and an Edge is usable as a map key.
type Edge struct {
	A, B Vertex
}

// NewEdge builds the undirected edge between a and b, in normalized form.
func NewEdge(a, b Vertex) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// Other returns the endpoint opposite to v, and whether v is an endpoint of
// the edge at all.
func (e Edge) Other(v Vertex) (Vertex, bool) {
	switch v {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return 0, false
	}
}

// String renders the edge as "A B", one legacy-format line without the
// trailing newline.
func (e Edge) String() string { return fmt.Sprintf("%d %d", int64(e.A), int64(e.B)) }
