package maze

import (
	"sort"
	"sync"
)

// Maze is an undirected graph with two distinguished member vertices, the
// start and the end. The zero value is not usable; construct with New.
//
// Internally the edge set is mirrored by an adjacency index so that
// Neighbors costs O(deg(v)) instead of a scan over the whole vertex set.
// A single RWMutex guards both; search engines only ever take read locks.
type Maze struct {
	mu sync.RWMutex

	vertices map[Vertex]struct{}
	edges    map[Edge]struct{}

	// adjacency[v] holds every vertex sharing an edge with v.
	adjacency map[Vertex]map[Vertex]struct{}

	start Vertex
	end   Vertex
}

// New creates a Maze whose start and end are the given vertices. Both are
// inserted into the vertex set immediately, so Start and End are always
// members. start == end is allowed and describes the already-solved maze.
// Complexity: O(1)
func New(start, end Vertex) *Maze {
	m := &Maze{
		vertices:  make(map[Vertex]struct{}),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[Vertex]map[Vertex]struct{}),
		start:     start,
		end:       end,
	}
	m.vertices[start] = struct{}{}
	m.vertices[end] = struct{}{}

	return m
}

// Start returns the maze's designated entry vertex.
func (m *Maze) Start() Vertex { return m.start }

// End returns the maze's designated exit vertex.
func (m *Maze) End() Vertex { return m.end }

// AddVertex inserts v into the vertex set.
// Reports whether v was not present before.
func (m *Maze) AddVertex(v Vertex) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vertices[v]; ok {
		return false
	}
	m.vertices[v] = struct{}{}

	return true
}

// AddEdge inserts the undirected edge between a and b, adding either endpoint
// to the vertex set first if missing. Reports whether the edge was new.
// Complexity: O(1)
func (m *Maze) AddEdge(a, b Vertex) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vertices[a] = struct{}{}
	m.vertices[b] = struct{}{}

	e := NewEdge(a, b)
	if _, ok := m.edges[e]; ok {
		return false
	}
	m.edges[e] = struct{}{}
	m.link(a, b)
	m.link(b, a)

	return true
}

// RemoveEdge deletes the undirected edge between a and b. The endpoints stay
// in the vertex set. Reports whether the edge was present.
func (m *Maze) RemoveEdge(a, b Vertex) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := NewEdge(a, b)
	if _, ok := m.edges[e]; !ok {
		return false
	}
	delete(m.edges, e)
	m.unlink(a, b)
	m.unlink(b, a)

	return true
}

// RemoveVertex deletes v and every edge incident to it, keeping the
// edges-over-members invariant intact. The start and end vertices cannot be
// removed. Reports whether v was present (and removable).
// Complexity: O(deg(v))
func (m *Maze) RemoveVertex(v Vertex) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vertices[v]; !ok {
		return false
	}
	if v == m.start || v == m.end {
		return false
	}
	for u := range m.adjacency[v] {
		delete(m.edges, NewEdge(v, u))
		m.unlink(u, v)
	}
	delete(m.adjacency, v)
	delete(m.vertices, v)

	return true
}

// HasVertex reports whether v is a member of the maze.
func (m *Maze) HasVertex(v Vertex) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.vertices[v]

	return ok
}

// HasEdge reports whether an edge between a and b exists, in either argument
// order.
func (m *Maze) HasEdge(a, b Vertex) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.edges[NewEdge(a, b)]

	return ok
}

// Neighbors returns every vertex sharing an edge with v, sorted ascending for
// reproducible traversal order. Returns ErrVertexNotFound if v is not a
// member of the maze.
// Complexity: O(deg(v) log deg(v))
func (m *Maze) Neighbors(v Vertex) ([]Vertex, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.vertices[v]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Vertex, 0, len(m.adjacency[v]))
	for u := range m.adjacency[v] {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the number of edges incident to v, or ErrVertexNotFound if
// v is not a member of the maze.
func (m *Maze) Degree(v Vertex) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.vertices[v]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(m.adjacency[v]), nil
}

// Vertices returns a snapshot of the vertex set, sorted ascending.
func (m *Maze) Vertices() []Vertex {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Vertex, 0, len(m.vertices))
	for v := range m.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns a snapshot of the edge set, sorted by (A, B) ascending.
func (m *Maze) Edges() []Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Edge, 0, len(m.edges))
	for e := range m.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// VertexCount returns the size of the vertex set.
func (m *Maze) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vertices)
}

// EdgeCount returns the size of the edge set.
func (m *Maze) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.edges)
}

// link records u as adjacent to v. Caller holds the write lock.
func (m *Maze) link(v, u Vertex) {
	if m.adjacency[v] == nil {
		m.adjacency[v] = make(map[Vertex]struct{})
	}
	m.adjacency[v][u] = struct{}{}
}

// unlink removes u from v's adjacency bucket, pruning the bucket when it
// empties. Caller holds the write lock.
func (m *Maze) unlink(v, u Vertex) {
	if bucket := m.adjacency[v]; bucket != nil {
		delete(bucket, u)
		if len(bucket) == 0 {
			delete(m.adjacency, v)
		}
	}
}
