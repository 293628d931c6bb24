package solve

import (
	"context"
	"fmt"

	"github.com/mazerlab/mazer/maze"
)

// Bidirectional is the synchronized bidirectional breadth-first engine. Two
// frontiers — one rooted at the maze's start, one at its end — advance in
// strict alternation until a vertex is discovered by both sides; the joined
// backtracks form a true unweighted shortest path.
//
// The end-side frontier is the publisher: after each of its rounds it
// replaces the shared horizon set with exactly the vertices of its freshly
// prepared next queue, so the other side only ever tests against a layer one
// full round ahead. The start-side frontier is the checker: it tests its own
// vertices against the horizon. Which side plays which role is arbitrary and
// does not affect correctness.
//
// FindOne only. Both frontiers expand in perfect BFS layers, so the returned
// path's edge count equals the unweighted shortest-path distance.
// Complexity: O(V+E) worst case, typically far fewer vertices touched than a
// single-source BFS thanks to the queue-balancing heuristic.
type Bidirectional struct {
	m    *maze.Maze
	mode Mode
	opts options

	// horizon is the publisher's most recently completed layer; written only
	// by the publisher, read only by the checker, never touched while either
	// side's round is in flight.
	horizon map[maze.Vertex]struct{}
}

// compile-time contract check
var _ Solver = (*Bidirectional)(nil)

// NewBidirectional constructs a bidirectional engine over m in the given
// mode. Validation is deferred to Solve so that construction never fails;
// FindAll is reported there as ErrAllSolutionsUnsupported.
func NewBidirectional(m *maze.Maze, mode Mode, opts ...Option) *Bidirectional {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Bidirectional{m: m, mode: mode, opts: o}
}

// Mode reports the mode the engine was constructed with.
func (b *Bidirectional) Mode() Mode { return b.mode }

// queueItem pairs a vertex with its discovery distance from the frontier's
// own root.
type queueItem struct {
	v    maze.Vertex
	dist int
}

// roundResult is what one frontier reports back to the outer loop.
type roundResult struct {
	// ended means this side can make no further progress: the checker found
	// a connection, or the side's queues ran dry.
	ended bool

	// conn is the connection vertex when found is true.
	conn  maze.Vertex
	found bool
}

// frontier is one side of the search: a BFS rooted at root, expanded one
// layer-round at a time so control can be handed to the other side between
// rounds.
type frontier struct {
	eng     *Bidirectional
	root    maze.Vertex
	checker bool

	// visited maps every discovered vertex to its distance from root; it
	// doubles as the backtracking record.
	visited map[maze.Vertex]int

	// queue holds the current round's vertices; next collects their unseen
	// neighbors and becomes the queue when the round completes.
	queue []queueItem
	next  []queueItem
}

// newFrontier roots a frontier at root. The root is visited at distance 0
// and queued for the first round.
func newFrontier(eng *Bidirectional, root maze.Vertex, checker bool) *frontier {
	f := &frontier{
		eng:     eng,
		root:    root,
		checker: checker,
		visited: map[maze.Vertex]int{root: 0},
		queue:   []queueItem{{v: root, dist: 0}},
	}

	return f
}

// Solve runs the search and returns a singleton collection holding one
// shortest path, or an empty collection when the end is unreachable.
func (b *Bidirectional) Solve(ctx context.Context) ([]Path, error) {
	if b.m == nil {
		return nil, ErrMazeNil
	}
	if b.opts.err != nil {
		return nil, b.opts.err
	}
	switch b.mode {
	case FindOne:
	case FindAll:
		return nil, ErrAllSolutionsUnsupported
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, b.mode)
	}

	// Already standing on the exit: one zero-edge path.
	if b.m.Start() == b.m.End() {
		return []Path{{b.m.Start()}}, nil
	}

	b.horizon = make(map[maze.Vertex]struct{})
	check := newFrontier(b, b.m.Start(), true)
	publish := newFrontier(b, b.m.End(), false)

	var resCheck, resPublish roundResult
	for !(resCheck.ended && resCheck.found) && !(resCheck.ended && resPublish.ended) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// A side rounds only while its queue is non-empty and not already
		// far ahead of the other side's; the factor keeps the two
		// expansions balanced so fewer vertices get touched overall.
		if len(publish.queue) > 0 && b.withinBudget(publish, check) {
			var err error
			if resPublish, err = publish.round(); err != nil {
				return nil, err
			}
		}

		if len(check.queue) > 0 && b.withinBudget(check, publish) {
			var err error
			if resCheck, err = check.round(); err != nil {
				return nil, err
			}
		} else {
			// Even on a skipped round the checker re-tests its pending
			// queue: the publisher's latest horizon alone can complete the
			// connection.
			resCheck = check.recheck()
		}
	}

	if !resCheck.found {
		return []Path{}, nil
	}

	path, err := b.join(check, publish, resCheck.conn)
	if err != nil {
		return nil, err
	}

	return []Path{path}, nil
}

// withinBudget reports whether f's queue is small enough, relative to
// other's, for f to take its round. Once the other side has run dry there is
// nothing left to balance against, so f always proceeds; without that the
// surviving frontier could be skipped forever and a disconnected maze would
// never report exhaustion.
func (b *Bidirectional) withinBudget(f, other *frontier) bool {
	if len(other.queue) == 0 {
		return true
	}

	return float64(len(f.queue)) < b.opts.branching*float64(len(other.queue)+1)
}

// round performs one full BFS round: every currently queued vertex is
// dequeued and expanded, unseen neighbors are recorded and collected for the
// next round. The publisher finishes by replacing the horizon with its next
// layer.
//
// A checker hit on a freshly discovered neighbor (one layer out) records the
// connection and suppresses all further expansion, but the queue keeps
// draining: a still-queued current-layer vertex may itself sit in the
// horizon, and that meeting is one edge closer, so it overrides the recorded
// connection. Without the override the joined path can exceed the shortest
// distance by one edge.
func (f *frontier) round() (roundResult, error) {
	var res roundResult

	for _, item := range f.queue {
		// A queued vertex may itself sit in the horizon when the publisher
		// advanced after this vertex was queued.
		if f.checker {
			if _, ok := f.eng.horizon[item.v]; ok {
				res = roundResult{ended: true, conn: item.v, found: true}

				break
			}
		}

		// A neighbor-level connection is already recorded; keep scanning the
		// queue for a current-layer override but expand nothing further.
		if res.found {
			continue
		}

		if f.eng.opts.onVisit != nil {
			f.eng.opts.onVisit(item.v)
		}

		neighbors, err := f.eng.m.Neighbors(item.v)
		if err != nil {
			return res, fmt.Errorf("solve: Neighbors(%v): %w", item.v, err)
		}

		for _, u := range neighbors {
			if _, seen := f.visited[u]; seen {
				continue
			}
			f.visited[u] = item.dist + 1

			if f.checker {
				if _, ok := f.eng.horizon[u]; ok {
					res = roundResult{ended: true, conn: u, found: true}

					break
				}
			}
			f.next = append(f.next, queueItem{v: u, dist: item.dist + 1})
		}
	}

	if !f.checker {
		f.eng.horizon = make(map[maze.Vertex]struct{}, len(f.next))
		for _, item := range f.next {
			f.eng.horizon[item.v] = struct{}{}
		}
	}

	if !res.ended {
		res.ended = len(f.next) == 0
	}

	f.queue, f.next = f.next, nil

	return res, nil
}

// recheck scans the still-unprocessed queue against the horizon without
// expanding anything. Called on iterations where the frontier's round was
// skipped; only meaningful for the checker, the publisher merely reports
// whether it has run dry.
func (f *frontier) recheck() roundResult {
	res := roundResult{ended: len(f.queue) == 0}

	if f.checker {
		for _, item := range f.queue {
			if _, ok := f.eng.horizon[item.v]; ok {
				res = roundResult{ended: true, conn: item.v, found: true}

				break
			}
		}
	}

	return res
}

// backtrack walks from the connection vertex home to this frontier's root by
// always stepping to the neighbor with the strictly smallest recorded
// distance. Ties are safe to break arbitrarily: in an unweighted graph every
// minimum-distance neighbor lies on a shortest path.
func (f *frontier) backtrack(conn maze.Vertex) (Path, error) {
	path := Path{conn}

	for cur := conn; cur != f.root; {
		neighbors, err := f.eng.m.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("solve: Neighbors(%v): %w", cur, err)
		}

		minDist := -1
		var minVertex maze.Vertex
		for _, u := range neighbors {
			if d, ok := f.visited[u]; ok && (minDist == -1 || d < minDist) {
				minDist = d
				minVertex = u
			}
		}

		path = append(path, minVertex)
		cur = minVertex
	}

	return path, nil
}

// join merges the two backtracks through the connection vertex into one
// start-to-end path, dropping the duplicated connection vertex once.
func (b *Bidirectional) join(check, publish *frontier, conn maze.Vertex) (Path, error) {
	fromStart, err := check.backtrack(conn)
	if err != nil {
		return nil, err
	}
	fromEnd, err := publish.backtrack(conn)
	if err != nil {
		return nil, err
	}

	// fromStart runs conn→…→start: drop conn, reverse, then append the
	// end-side walk conn→…→end.
	fromStart = fromStart[1:]
	for i, j := 0, len(fromStart)-1; i < j; i, j = i+1, j-1 {
		fromStart[i], fromStart[j] = fromStart[j], fromStart[i]
	}

	path := make(Path, 0, len(fromStart)+len(fromEnd))
	path = append(path, fromStart...)
	path = append(path, fromEnd...)

	return path, nil
}
