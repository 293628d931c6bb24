// Package mazer finds paths between the two distinguished endpoints of an
// undirected maze graph.
//
// The module is organized under three library packages and one command:
//
//	maze/      — the graph model: integer vertices, unordered edges, a
//	             designated start and end, and O(degree) neighbor lookup
//	solve/     — the search engines: a recursive depth-first engine that can
//	             return the first or every simple solution, and a
//	             bidirectional breadth-first engine that returns a shortest
//	             solution
//	mazetxt/   — the legacy "intID intID" text format (vertex 0 is the start,
//	             vertex 1 is the end), parse and write
//	cmd/mazer/ — the command-line driver
//
// Quick ASCII example:
//
//	0───2───3
//	│       │
//	4───────1
//
//	a maze with two solutions, 0→2→3→1 and the shorter 0→4→1.
//
// All engine state is private to a single Solve run, so several engines may
// solve the same Maze concurrently.
package mazer
