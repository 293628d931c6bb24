package mazetxt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mazerlab/mazer/maze"
)

// Sentinel errors for the text-format boundary.
var (
	// ErrMalformedInput indicates a line that is not two space-separated
	// integer IDs.
	ErrMalformedInput = errors.New("mazetxt: malformed maze file")

	// ErrFileUnavailable indicates the maze file does not exist, is a
	// directory, or could not be read.
	ErrFileUnavailable = errors.New("mazetxt: maze file unavailable")
)

// Reserved vertex IDs of the legacy format.
const (
	// StartID is the vertex designated as the maze's start.
	StartID maze.Vertex = 0

	// EndID is the vertex designated as the maze's end.
	EndID maze.Vertex = 1
)

// Parse reads the legacy edge-per-line format from r and builds the maze.
// Blank lines are skipped after trimming; every other line must be exactly
// "intID intID" with a single separating space. Vertices are created on
// first mention; vertices 0 and 1 exist even in an edgeless file.
// Complexity: O(lines)
func Parse(r io.Reader) (*maze.Maze, error) {
	m := maze.New(StartID, EndID)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Split(line, " ")
		if len(tokens) != 2 {
			return nil, fmt.Errorf("%w: line %d: want two IDs, got %d tokens", ErrMalformedInput, lineNo, len(tokens))
		}

		a, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer ID", ErrMalformedInput, lineNo, tokens[0])
		}
		b, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer ID", ErrMalformedInput, lineNo, tokens[1])
		}

		m.AddEdge(maze.Vertex(a), maze.Vertex(b))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}

	return m, nil
}

// ParseFile opens and parses the maze file at path. A missing file or a
// directory yields ErrFileUnavailable.
func ParseFile(path string) (*maze.Maze, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileUnavailable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileUnavailable, path)
	}
	defer f.Close()

	return Parse(f)
}

// Write emits m's edges to w in the legacy format, one "intID intID" line per
// edge, sorted by endpoints. Isolated vertices are not representable in the
// format and are not emitted.
func Write(w io.Writer, m *maze.Maze) error {
	for _, e := range m.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", int64(e.A), int64(e.B)); err != nil {
			return err
		}
	}

	return nil
}
