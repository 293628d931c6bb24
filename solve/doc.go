// Package solve provides the two maze-search engines and the contract they
// share.
//
// # Contract
//
// Every engine is constructed with the maze it will search and a Mode, and
// exposes one operation:
//
//	Solve(ctx) ([]Path, error)
//
// Solve returns an ordered collection of solutions, each a Path from the
// maze's start to its end with no repeated vertex. An unreachable end yields
// an empty collection, never an error. The maze is read-only during a run;
// all auxiliary state (coloring, visited distances, queues) is owned by the
// engine and discarded when Solve returns, so distinct engines may solve the
// same maze concurrently.
//
// # Engines
//
//   - DFS — recursive depth-first search with Unvisited/Active/Done vertex
//     coloring. FindOne stops at the first solution; FindAll enumerates every
//     simple solution, re-opening vertices that may still sit on undiscovered
//     paths while keeping provably dead branches closed.
//     Complexity: O(V+E) for FindOne; FindAll is exponential in the worst
//     case, as the number of simple paths itself is.
//
//   - Bidirectional — two breadth-first frontiers, one rooted at the start
//     and one at the end, advanced in strict alternation. The end-side
//     frontier publishes its freshly discovered layer as the "horizon"; the
//     start-side frontier checks its own vertices against it. A frontier
//     whose queue has grown past DefaultBranchingFactor times the other's is
//     skipped for a turn so the smaller side catches up. The first vertex
//     seen by both sides is the connection; both sides backtrack from it
//     through their recorded distances, and the joined path is a true
//     unweighted shortest path. FindOne only: FindAll yields
//     ErrAllSolutionsUnsupported.
//
// # Cancellation
//
// Both engines honor context cancellation: the DFS recursion checks the
// context at every expansion, the bidirectional engine at every outer
// iteration. A cancelled run returns ctx.Err().
//
// For usage see example_test.go in this package.
package solve
