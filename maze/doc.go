// Package maze defines the graph model a maze is made of: integer-identified
// vertices, unordered edges, and a Maze holding both together with its two
// distinguished vertices, the start and the end.
//
// The model is deliberately small. A Maze answers membership and neighborhood
// queries and nothing else; every search strategy lives in package solve and
// treats the Maze as read-only.
//
// Guarantees:
//
//   - Edges are unordered: NewEdge(a, b) == NewEdge(b, a), and the pair is a
//     valid map key.
//   - Every edge's endpoints are members of the vertex set. AddEdge inserts
//     missing endpoints; RemoveVertex drops incident edges.
//   - The start and end vertices are always members of the vertex set.
//   - Neighbors, Vertices, and Edges enumerate in ascending order, so
//     traversals over the same Maze are reproducible.
//   - All methods are safe for concurrent use; mutation and queries are
//     guarded by a single RWMutex.
//
// Presence and absence are never errors: AddVertex, AddEdge, RemoveVertex,
// and RemoveEdge report via their boolean return whether anything changed.
// The only sentinel, ErrVertexNotFound, fires when an operation needs a
// vertex the maze does not contain (Neighbors on an unknown vertex).
package maze
