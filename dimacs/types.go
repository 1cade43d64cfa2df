package dimacs

import (
	"errors"

	"github.com/katalvlaran/eqcolor/graph"
)

// Sentinel errors for loading DIMACS graphs.
var (
	// ErrFileNotFound indicates that the graph source does not exist.
	ErrFileNotFound = errors.New("dimacs: graph file not found")

	// ErrMalformedInput indicates a line that cannot be parsed, or a source
	// that never declares a positive vertex count within MaxVertices.
	ErrMalformedInput = errors.New("dimacs: malformed input")
)

// Header holds the values declared on the "p edge V E" line.
type Header struct {
	Vertices int
	Edges    int
}

// Instance is a loaded DIMACS graph together with load diagnostics.
//
// Graph is immutable and may be shared between verification runs.
// EdgeLines counts well-formed "e" lines, duplicates and dropped edges included.
// Skipped counts lines ignored by the permissive classifier (comments excluded).
// Dropped counts edges with an endpoint outside [1, V].
type Instance struct {
	Graph     *graph.Graph
	Declared  Header
	EdgeLines int
	Skipped   int
	Dropped   int
	Comments  []string
}

// lineKind tags the classification of a single input line.
type lineKind int

const (
	lineSkip lineKind = iota
	lineComment
	lineProblem
	lineEdge
	lineFatal
)

// line is the tagged result of classifying one input line.
// Only the fields matching kind are meaningful.
type line struct {
	kind    lineKind
	header  Header     // lineProblem
	edge    graph.Edge // lineEdge, 0-indexed
	comment string     // lineComment
	err     error      // lineFatal
}
