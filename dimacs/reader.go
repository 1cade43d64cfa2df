package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqcolor/graph"
)

// maxLineBytes bounds a single input line (long comment banners included).
const maxLineBytes = 1 << 20

// MaxVertices is the largest vertex count a "p edge" line may declare.
// Larger headers are rejected before any graph memory is allocated.
const MaxVertices = 1 << 24

// Load opens path and parses it with Read.
// A missing file yields an error wrapping ErrFileNotFound.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("dimacs: open %q: %w", path, err)
	}
	defer f.Close()

	inst, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Read parses a DIMACS edge list from r.
// The whole stream is consumed before the graph is built; on any fatal line,
// on a read error, or when no positive vertex count is declared, Read returns
// a nil Instance.
// Complexity: O(L + V + E·log d) for L input lines.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		header    Header
		hasHeader bool
		edges     []graph.Edge
		inst      = &Instance{}
	)
	for lineNo := 1; sc.Scan(); lineNo++ {
		ln := classify(sc.Text(), lineNo)
		switch ln.kind {
		case lineFatal:
			return nil, ln.err
		case lineComment:
			inst.Comments = append(inst.Comments, ln.comment)
		case lineProblem:
			header, hasHeader = ln.header, true
		case lineEdge:
			edges = append(edges, ln.edge)
		default:
			inst.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if !hasHeader || header.Vertices == 0 {
		return nil, fmt.Errorf("%w: missing or zero vertex count", ErrMalformedInput)
	}

	inst.EdgeLines = len(edges)

	// Keep only edges that fit the declared vertex range.
	n := header.Vertices
	kept := edges[:0]
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			inst.Dropped++
			continue
		}
		kept = append(kept, e)
	}

	g, err := graph.New(n, kept)
	if err != nil {
		return nil, fmt.Errorf("dimacs: build graph: %w", err)
	}
	inst.Graph = g
	inst.Declared = header

	return inst, nil
}

// classify turns one raw input line into a tagged line value.
func classify(raw string, lineNo int) line {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return line{kind: lineSkip}
	}

	switch fields[0] {
	case "c":
		return line{kind: lineComment, comment: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "c"))}

	case "p":
		if len(fields) < 4 || fields[1] != "edge" {
			return line{kind: lineSkip}
		}
		v, err := parseCount(fields[2])
		if err != nil {
			return fatalf(lineNo, "vertex count %q: %v", fields[2], err)
		}
		if v > MaxVertices {
			return fatalf(lineNo, "vertex count %d exceeds limit %d", v, MaxVertices)
		}
		e, err := parseCount(fields[3])
		if err != nil {
			return fatalf(lineNo, "edge count %q: %v", fields[3], err)
		}
		return line{kind: lineProblem, header: Header{Vertices: v, Edges: e}}

	case "e":
		if len(fields) < 3 {
			return line{kind: lineSkip}
		}
		u, err := strconv.Atoi(fields[1])
		if err != nil {
			return fatalf(lineNo, "edge endpoint %q: not an integer", fields[1])
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return fatalf(lineNo, "edge endpoint %q: not an integer", fields[2])
		}
		return line{kind: lineEdge, edge: graph.Edge{U: u - 1, V: v - 1}}
	}

	return line{kind: lineSkip}
}

// parseCount parses a non-negative decimal integer.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < 0 {
		return 0, errors.New("negative")
	}

	return n, nil
}

func fatalf(lineNo int, format string, args ...interface{}) line {
	return line{
		kind: lineFatal,
		err:  fmt.Errorf("%w: line %d: %s", ErrMalformedInput, lineNo, fmt.Sprintf(format, args...)),
	}
}
