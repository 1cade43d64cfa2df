package coloring

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates coloring text containing a token that is not a
// non-negative integer.
var ErrMalformedInput = errors.New("coloring: malformed input")

// TokenError describes the first offending token of a failed parse.
// It wraps ErrMalformedInput for errors.Is compatibility.
type TokenError struct {
	Index  int    // 0-based token position, i.e. the vertex it would have colored
	Token  string // raw token text
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: token #%d %q: %s", ErrMalformedInput, e.Index, e.Token, e.Reason)
}

// Unwrap returns ErrMalformedInput.
func (e *TokenError) Unwrap() error { return ErrMalformedInput }

// Coloring assigns color Coloring[i] to vertex i.
type Coloring []int

// Len returns the number of colored vertices.
func (c Coloring) Len() int { return len(c) }

// Clone returns an independent copy.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	copy(out, c)

	return out
}

// Head returns a copy of the first n colors (fewer if the coloring is shorter).
func (c Coloring) Head(n int) []int {
	if n > len(c) {
		n = len(c)
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	copy(out, c[:n])

	return out
}

// Tail returns a copy of the last n colors (fewer if the coloring is shorter).
func (c Coloring) Tail(n int) []int {
	if n > len(c) {
		n = len(c)
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	copy(out, c[len(c)-n:])

	return out
}

// Truncate returns a new coloring holding the first n colors.
// c itself is never modified; n beyond Len returns a full copy.
func (c Coloring) Truncate(n int) Coloring {
	return Coloring(c.Head(n))
}
