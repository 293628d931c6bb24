package solve_test

import (
	"context"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mazerlab/mazer/maze"
	"github.com/mazerlab/mazer/solve"
)

// mazeFromIDs pairs up consecutive entries of a random ID slice into edges.
// IDs are kept in a small range so the graphs are dense enough to contain
// cycles, shared sub-paths and unreachable pockets.
func mazeFromIDs(ids []int64) *maze.Maze {
	m := maze.New(0, 1)
	for i := 0; i+1 < len(ids); i += 2 {
		if ids[i] != ids[i+1] {
			m.AddEdge(maze.Vertex(ids[i]), maze.Vertex(ids[i+1]))
		}
	}

	return m
}

// isValidPath mirrors requireValidPath as a boolean for property bodies.
func isValidPath(m *maze.Maze, p solve.Path) bool {
	if len(p) == 0 || p[0] != m.Start() || p[len(p)-1] != m.End() {
		return false
	}
	seen := map[maze.Vertex]bool{}
	for i, v := range p {
		if seen[v] {
			return false
		}
		seen[v] = true
		if i > 0 && !m.HasEdge(p[i-1], v) {
			return false
		}
	}

	return true
}

// TestSearchProperties cross-checks both engines against brute-force oracles
// on randomly generated mazes.
func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property 1: FindAll returns exactly the set of simple solutions.
	properties.Property("exhaustive search matches brute-force enumeration", prop.ForAll(
		func(ids []int64) bool {
			m := mazeFromIDs(ids)

			got, err := solve.NewDFS(m, solve.FindAll).Solve(context.Background())
			if err != nil {
				return false
			}
			for _, p := range got {
				if !isValidPath(m, p) {
					return false
				}
			}

			want := enumerateSimplePaths(m)
			if len(got) != len(want) {
				return false
			}

			gotKeys := make([]string, len(got))
			for i, p := range got {
				gotKeys[i] = pathKey(p)
			}
			wantKeys := make([]string, len(want))
			for i, p := range want {
				wantKeys[i] = pathKey(p)
			}
			sort.Strings(gotKeys)
			sort.Strings(wantKeys)
			for i := range gotKeys {
				if gotKeys[i] != wantKeys[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Int64Range(0, 8)),
	))

	// Property 2: the bidirectional engine finds a path exactly when the end
	// is reachable, and that path is shortest.
	properties.Property("bidirectional search is exact on reachability and distance", prop.ForAll(
		func(ids []int64) bool {
			m := mazeFromIDs(ids)

			paths, err := solve.NewBidirectional(m, solve.FindOne).Solve(context.Background())
			if err != nil {
				return false
			}

			dist, reachable := referenceDistances(m, m.Start())[m.End()]
			if !reachable {
				return len(paths) == 0
			}

			return len(paths) == 1 &&
				isValidPath(m, paths[0]) &&
				paths[0].Len() == dist
		},
		gen.SliceOf(gen.Int64Range(0, 8)),
	))

	// Property 3: FindOne agrees with FindAll on solvability.
	properties.Property("single-solution search succeeds iff any solution exists", prop.ForAll(
		func(ids []int64) bool {
			m := mazeFromIDs(ids)

			one, err := solve.NewDFS(m, solve.FindOne).Solve(context.Background())
			if err != nil {
				return false
			}
			all, err := solve.NewDFS(m, solve.FindAll).Solve(context.Background())
			if err != nil {
				return false
			}

			if len(all) == 0 {
				return len(one) == 0
			}

			return len(one) == 1 && isValidPath(m, one[0])
		},
		gen.SliceOf(gen.Int64Range(0, 8)),
	))

	properties.TestingRun(t)
}
