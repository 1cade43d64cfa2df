// Package coloring parses and represents a vertex-to-color assignment.
//
// A Coloring is an ordered sequence of non-negative color ids: position i is
// the color of (0-indexed) vertex i. Input is free-form text of integers
// separated by any mix of spaces, tabs and newlines.
//
// Parsing is all-or-nothing. A single token that is not a base-10 integer,
// or is negative, fails the whole parse with an error wrapping
// ErrMalformedInput; no partial coloring is ever returned, because a silently
// shortened coloring would shift every later vertex onto the wrong color.
//
//	c, err := coloring.Parse("0 1 2\n0 1 2")
//	// c == Coloring{0, 1, 2, 0, 1, 2}
//
//	_, err = coloring.Parse("0 1 x")
//	var te *coloring.TokenError
//	errors.As(err, &te) // te.Index == 2, te.Token == "x"
package coloring
