package solve_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazerlab/mazer/maze"
	"github.com/mazerlab/mazer/solve"
)

// TestBidirectional_Scenario pins the canonical shortest path: [0 4 1] of
// length 2, never the longer [0 2 3 1].
func TestBidirectional_Scenario(t *testing.T) {
	m := scenario()

	paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, solve.Path{0, 4, 1}, paths[0])
	assert.Equal(t, 2, paths[0].Len())
}

// TestBidirectional_FindAllUnsupported: the engine only searches for one
// solution.
func TestBidirectional_FindAllUnsupported(t *testing.T) {
	m := scenario()

	_, err := solve.NewBidirectional(m, solve.FindAll).Solve(context.Background())
	assert.ErrorIs(t, err, solve.ErrAllSolutionsUnsupported)
}

// TestBidirectional_ShortestLength checks the returned edge count against an
// independent single-source BFS on a set of fixed topologies.
func TestBidirectional_ShortestLength(t *testing.T) {
	cases := map[string]*maze.Maze{
		"scenario":    scenario(),
		"direct edge": build([2]int64{0, 1}),
		"long chain vs shortcut": build(
			[2]int64{0, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{4, 5}, [2]int64{5, 1},
			[2]int64{0, 6}, [2]int64{6, 7}, [2]int64{7, 1},
		),
		"ladder": build(
			[2]int64{0, 2}, [2]int64{0, 3}, [2]int64{2, 4}, [2]int64{3, 4},
			[2]int64{4, 5}, [2]int64{5, 1}, [2]int64{3, 5},
		),
		"star": build(
			[2]int64{0, 2}, [2]int64{0, 3}, [2]int64{0, 4},
			[2]int64{2, 1}, [2]int64{3, 1}, [2]int64{4, 1},
		),
	}

	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
			require.NoError(t, err)
			require.Len(t, paths, 1)
			requireValidPath(t, m, paths[0])

			want := referenceDistances(m, m.Start())[m.End()]
			assert.Equal(t, want, paths[0].Len(), "path %v is not shortest", paths[0])
		})
	}
}

// TestBidirectional_LongChain: both frontiers must meet in the middle of a
// path much deeper than one round.
func TestBidirectional_LongChain(t *testing.T) {
	m := maze.New(0, 1)
	prev := maze.Vertex(0)
	for i := int64(2); i < 60; i++ {
		m.AddEdge(prev, maze.Vertex(i))
		prev = maze.Vertex(i)
	}
	m.AddEdge(prev, 1)

	paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	requireValidPath(t, m, paths[0])
	assert.Equal(t, 59, paths[0].Len())
}

// TestBidirectional_UnbalancedBranching: one side fans out massively while
// the other is a thin corridor; the balancing heuristic must not change the
// answer.
func TestBidirectional_UnbalancedBranching(t *testing.T) {
	m := maze.New(0, 1)
	// bushy tree hanging off the start
	for i := int64(10); i < 40; i++ {
		m.AddEdge(0, maze.Vertex(i))
		m.AddEdge(maze.Vertex(i), maze.Vertex(i+100))
	}
	// thin corridor that actually reaches the end
	m.AddEdge(0, 2)
	m.AddEdge(2, 3)
	m.AddEdge(3, 1)

	paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, solve.Path{0, 2, 3, 1}, paths[0])
}

// TestBidirectional_CurrentLayerOverride: while the checker drains a layer,
// an early vertex discovers a neighbor sitting in the horizon before a later
// vertex of the same layer, itself in the horizon, gets examined. The
// current-layer meeting is one edge closer and must win; settling for the
// neighbor-level one yields the four-edge 0→4→2→6→1 instead of the shortest
// 0→5→6→1.
func TestBidirectional_CurrentLayerOverride(t *testing.T) {
	m := build(
		[2]int64{0, 4}, [2]int64{0, 5}, [2]int64{0, 7},
		[2]int64{1, 6}, [2]int64{2, 4}, [2]int64{2, 6},
		[2]int64{3, 6}, [2]int64{4, 7}, [2]int64{5, 6},
	)

	paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	requireValidPath(t, m, paths[0])

	assert.Equal(t, referenceDistances(m, 0)[1], paths[0].Len())
	assert.Equal(t, solve.Path{0, 5, 6, 1}, paths[0])
}

// TestBidirectional_BranchingFactorOption: a custom factor is accepted and
// still yields a shortest path.
func TestBidirectional_BranchingFactorOption(t *testing.T) {
	m := scenario()

	paths, err := solve.NewBidirectional(m, solve.FindOne, solve.WithBranchingFactor(1.5)).
		Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, 2, paths[0].Len())
}

// TestBidirectional_Cancellation: a cancelled context halts the outer loop.
func TestBidirectional_Cancellation(t *testing.T) {
	m := maze.New(0, 1)
	prev := maze.Vertex(0)
	for i := int64(2); i < 100; i++ {
		m.AddEdge(prev, maze.Vertex(i))
		prev = maze.Vertex(i)
	}
	m.AddEdge(prev, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solve.NewBidirectional(m, solve.FindOne).Solve(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestBidirectional_OnVisit: the hook fires and a run touches no more
// vertices than the maze has.
func TestBidirectional_OnVisit(t *testing.T) {
	m := scenario()

	touched := 0
	s := solve.NewBidirectional(m, solve.FindOne, solve.WithOnVisit(func(maze.Vertex) { touched++ }))
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Greater(t, touched, 0)
	assert.LessOrEqual(t, touched, m.VertexCount())
}

// TestBidirectional_Grid: shortest distance on a 6×6 grid with IDs packed
// row-major, checked against the reference BFS.
func TestBidirectional_Grid(t *testing.T) {
	const side = 6
	id := func(r, c int64) maze.Vertex { return maze.Vertex(10 + r*side + c) }

	m := maze.New(0, 1)
	for r := int64(0); r < side; r++ {
		for c := int64(0); c < side; c++ {
			if c+1 < side {
				m.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < side {
				m.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	m.AddEdge(0, id(0, 0))          // start enters the top-left corner
	m.AddEdge(id(side-1, side-1), 1) // end exits the bottom-right corner

	paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1, fmt.Sprintf("grid must be solvable, got %v", paths))
	requireValidPath(t, m, paths[0])

	want := referenceDistances(m, 0)[1]
	assert.Equal(t, want, paths[0].Len())
}
