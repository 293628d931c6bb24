// Package solve defines the Mode and Path types, the Solver contract, the
// functional options, and the sentinel errors shared by both engines.
package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mazerlab/mazer/maze"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrMazeNil is returned when an engine was constructed over a nil maze.
	ErrMazeNil = errors.New("solve: maze is nil")

	// ErrUnknownMode is returned when the Mode is neither FindOne nor FindAll.
	ErrUnknownMode = errors.New("solve: unknown solve mode")

	// ErrAllSolutionsUnsupported is returned by the bidirectional engine when
	// it was constructed with FindAll; only the DFS engine enumerates every
	// solution.
	ErrAllSolutionsUnsupported = errors.New("solve: bidirectional search supports FindOne only")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Mode selects how many solutions an engine should return.
type Mode uint8

const (
	// FindOne returns at most one solution.
	FindOne Mode = iota

	// FindAll returns every simple solution.
	FindAll
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case FindOne:
		return "FindOne"
	case FindAll:
		return "FindAll"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Path is an ordered, non-empty sequence of vertices from the maze's start to
// its end, consecutive vertices joined by an edge, no vertex repeated.
type Path []maze.Vertex

// Len returns the number of edges on the path (one less than the number of
// vertices; 0 for a single-vertex path).
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// String renders the path as "0 → 4 → 1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = v.String()
	}

	return strings.Join(parts, " → ")
}

// Solver is the contract every search engine satisfies: constructed with a
// maze and a Mode, it exposes the single Solve operation returning zero or
// more solutions.
type Solver interface {
	// Mode reports the mode the engine was constructed with.
	Mode() Mode

	// Solve searches the maze. It returns one Path per solution found
	// (empty when the end is unreachable) or an error if the engine is
	// misconfigured, the maze model rejects a query, or ctx is cancelled.
	Solve(ctx context.Context) ([]Path, error)
}

// Option configures optional engine behavior. An invalid Option is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*options)

// options holds the tunables shared by both engines.
type options struct {
	// onVisit, if non-nil, is invoked each time an engine expands a vertex.
	onVisit func(v maze.Vertex)

	// branching is the bidirectional load-balancing factor; a frontier skips
	// its round while its queue is at least branching×(other queue length+1).
	branching float64

	// err records the first invalid option for deferred surfacing.
	err error
}

// DefaultBranchingFactor is the estimated branching factor of a maze. A
// bidirectional frontier whose queue exceeds this factor times the opposite
// queue length (plus one) yields its turn so the smaller frontier catches up.
const DefaultBranchingFactor = 2.5

// defaultOptions returns the options both engines start from: no visit hook
// and the default branching factor.
func defaultOptions() options {
	return options{
		onVisit:   nil,
		branching: DefaultBranchingFactor,
		err:       nil,
	}
}

// WithOnVisit registers fn to be called for every vertex an engine expands.
// Useful for tracing and for counting touched vertices in tests.
func WithOnVisit(fn func(v maze.Vertex)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithBranchingFactor overrides the bidirectional scheduling factor.
// Values not strictly greater than 1 would let both frontiers starve each
// other and are rejected with ErrOptionViolation.
func WithBranchingFactor(f float64) Option {
	return func(o *options) {
		if f <= 1 {
			o.err = fmt.Errorf("%w: branching factor must be > 1, got %v", ErrOptionViolation, f)

			return
		}
		o.branching = f
	}
}
