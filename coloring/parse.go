package coloring

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxTokenBytes bounds a single whitespace-separated token.
const maxTokenBytes = 1 << 20

// Parse splits text on arbitrary whitespace and parses every token as a
// non-negative integer, preserving order. Empty text yields an empty,
// non-nil Coloring.
// Returns a *TokenError (wrapping ErrMalformedInput) on the first bad token.
func Parse(text string) (Coloring, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over a stream. A token longer than maxTokenBytes is
// reported as a *TokenError; any other read failure is wrapped as-is. Both
// yield a nil Coloring.
// Complexity: O(len(input)).
func ParseReader(r io.Reader) (Coloring, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenBytes)
	sc.Split(bufio.ScanWords)

	out := Coloring{}
	i := 0
	for ; sc.Scan(); i++ {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			reason := "not an integer"
			if errors.Is(err, strconv.ErrRange) {
				reason = "out of range"
			}
			return nil, &TokenError{Index: i, Token: tok, Reason: reason}
		}
		if v < 0 {
			return nil, &TokenError{Index: i, Token: tok, Reason: "negative color"}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &TokenError{Index: i, Reason: fmt.Sprintf("token longer than %d bytes", maxTokenBytes)}
		}
		return nil, fmt.Errorf("coloring: read: %w", err)
	}

	return out, nil
}
