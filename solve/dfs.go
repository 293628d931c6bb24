package solve

import (
	"context"
	"fmt"

	"github.com/mazerlab/mazer/maze"
)

// color is the visitation state of a vertex within one DFS run.
type color uint8

const (
	// white: the vertex has never been reached.
	white color = iota

	// gray: the vertex has been reached; its exploration is in progress or
	// may be re-opened by a later arrival (FindAll).
	gray

	// black: the vertex is fully explored and will never be expanded again.
	// In FindOne that means "expanded once"; in FindAll it means "provably
	// on no remaining solution".
	black
)

// DFS is the recursive depth-first engine. It supports both modes: FindOne
// returns the first solution encountered, FindAll enumerates every simple
// solution.
//
// Coloring lives in an engine-owned map keyed by vertex, never on the shared
// maze, and is re-created on every Solve call, so a DFS value may be reused.
type DFS struct {
	m    *maze.Maze
	mode Mode
	opts options

	// colors is the per-run coloring; vertices absent from the map are white.
	colors map[maze.Vertex]color
}

// compile-time contract check
var _ Solver = (*DFS)(nil)

// NewDFS constructs a depth-first engine over m in the given mode.
// Validation is deferred to Solve so that construction never fails.
func NewDFS(m *maze.Maze, mode Mode, opts ...Option) *DFS {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &DFS{m: m, mode: mode, opts: o}
}

// Mode reports the mode the engine was constructed with.
func (d *DFS) Mode() Mode { return d.mode }

// Solve runs the search. FindOne yields a singleton (or empty) collection;
// FindAll yields every simple path from start to end. An unreachable end is
// an empty collection, not an error.
func (d *DFS) Solve(ctx context.Context) ([]Path, error) {
	if d.m == nil {
		return nil, ErrMazeNil
	}
	if d.opts.err != nil {
		return nil, d.opts.err
	}
	if d.mode != FindOne && d.mode != FindAll {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, d.mode)
	}

	// Already standing on the exit: one zero-edge path, in either mode.
	if d.m.Start() == d.m.End() {
		return []Path{{d.m.Start()}}, nil
	}

	d.colors = make(map[maze.Vertex]color, d.m.VertexCount())

	if d.mode == FindOne {
		path, err := d.one(ctx, d.m.Start())
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			return []Path{}, nil
		}

		return []Path{path}, nil
	}

	paths, err := d.all(ctx, d.m.Start())
	if err != nil {
		return nil, err
	}
	if paths == nil {
		paths = []Path{}
	}

	return paths, nil
}

// one is the FindOne recursive step. It expands v, recursing into white
// neighbors until the end is met, and returns the sub-path from v's successor
// to the end (empty when no solution passes through v). The first success
// short-circuits every ancestor loop. v ends black either way: with the
// search stopping at the first solution, no vertex is worth a second
// expansion.
func (d *DFS) one(ctx context.Context, v maze.Vertex) (Path, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	d.colors[v] = gray
	if d.opts.onVisit != nil {
		d.opts.onVisit(v)
	}

	neighbors, err := d.m.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("solve: Neighbors(%v): %w", v, err)
	}

	var path Path
	for _, u := range neighbors {
		if len(path) > 0 {
			break
		}
		if d.colors[u] != white {
			continue
		}
		if u == d.m.End() {
			path = Path{u}

			break
		}
		if path, err = d.one(ctx, u); err != nil {
			return nil, err
		}
	}

	d.colors[v] = black

	if len(path) > 0 {
		path = append(Path{v}, path...)
	}

	return path, nil
}

// all is the FindAll recursive step. v is grayed before any recursion so no
// cycle can run back through it, then every white neighbor is explored and
// the collected path fragments get v prepended.
//
// The closing coloring is asymmetric: v goes black only when it produced no
// fragment and every neighbor except the one the recursion arrived from
// ended black — a provable dead end. Otherwise v is recolored white so a
// later arrival through a different predecessor may expand it again. That
// re-opening is what lets distinct solutions share sub-paths without the
// recursion looping forever.
func (d *DFS) all(ctx context.Context, v maze.Vertex) ([]Path, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	d.colors[v] = gray
	if d.opts.onVisit != nil {
		d.opts.onVisit(v)
	}

	neighbors, err := d.m.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("solve: Neighbors(%v): %w", v, err)
	}

	var paths []Path

	// Neighbors that came back black from their own expansion. The vertex
	// the recursion arrived from is gray and never counts, hence the -1 in
	// the dead-end test below.
	deadNeighbors := 0

	for _, u := range neighbors {
		if d.colors[u] != white {
			continue
		}
		if u == d.m.End() {
			paths = append(paths, Path{u})

			continue
		}
		sub, err := d.all(ctx, u)
		if err != nil {
			return nil, err
		}
		paths = append(paths, sub...)
		if d.colors[u] == black {
			deadNeighbors++
		}
	}

	if len(paths) == 0 && deadNeighbors == len(neighbors)-1 {
		d.colors[v] = black
	} else {
		d.colors[v] = white
	}

	for i := range paths {
		paths[i] = append(Path{v}, paths[i]...)
	}

	return paths, nil
}
