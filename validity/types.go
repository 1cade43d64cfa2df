package validity

import (
	"errors"
	"fmt"
)

// Sentinel errors for validity checking.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("validity: graph is nil")

	// ErrLengthMismatch indicates the coloring does not color exactly the
	// graph's vertices. It signals a usage error, not an improper coloring.
	ErrLengthMismatch = errors.New("validity: coloring length mismatch")
)

// LengthMismatchError carries the expected (vertex count) and actual
// (coloring length) sizes. It wraps ErrLengthMismatch.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrLengthMismatch, e.Expected, e.Actual)
}

// Unwrap returns ErrLengthMismatch.
func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// Violation is a monochromatic edge, 1-indexed, with U < V.
type Violation struct {
	U     int `json:"u" yaml:"u"`
	V     int `json:"v" yaml:"v"`
	Color int `json:"color" yaml:"color"`
}

// String renders the violation as "(u, v, color)".
func (v Violation) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.U, v.V, v.Color)
}

// Result holds the outcome of a validity check.
//   - Valid: true iff Violations is empty.
//   - Violations: every monochromatic edge, ordered by (U, V).
//   - EdgesChecked: distinct non-loop edges examined.
type Result struct {
	Valid        bool
	Violations   []Violation
	EdgesChecked int
}

// Count returns the number of violations.
func (r *Result) Count() int {
	return len(r.Violations)
}

// Preview returns at most n violations from the front of the list.
// The full list in r.Violations remains authoritative.
func (r *Result) Preview(n int) []Violation {
	if n < 0 {
		n = 0
	}
	if n > len(r.Violations) {
		n = len(r.Violations)
	}

	return r.Violations[:n:n]
}
