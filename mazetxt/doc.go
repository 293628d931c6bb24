// Package mazetxt owns the legacy maze text format, the system's only
// external contract.
//
// A maze file holds one edge per line: two integer vertex IDs separated by a
// single space. Blank lines are allowed and skipped. Vertices never appear on
// their own; a vertex exists once some edge mentions it. Vertex 0 is always
// the start of the maze and vertex 1 its end.
//
//	0 2
//	2 3
//	3 1
//
//	0 4
//	4 1
//
// Parse and Write round-trip the format byte-for-byte (modulo edge order,
// which Write emits sorted). Malformed lines — a token count other than two,
// or a token that is not an integer — yield ErrMalformedInput; a missing file
// or a directory path yields ErrFileUnavailable. The graph model is never
// re-validated here beyond what building it requires.
package mazetxt
