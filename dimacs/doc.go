// Package dimacs reads and writes undirected graphs in the DIMACS edge-list
// format used by the graph-coloring benchmark instances (DSJC125.9.col, ...).
//
// Format (line-oriented, whitespace-tokenized):
//
//	c <free text>      comment, ignored
//	p edge <V> <E>     problem line: vertex count V, edge count E
//	e <u> <v>          edge between 1-indexed vertices u and v
//
// Parsing policy
//
// Every line is classified on its own into a tagged result:
//
//   - skip:    blank lines, comments, unknown leading tokens, "p" lines that
//     are not "p edge V E", and "e" lines with fewer than two indices;
//   - problem: a well-formed "p edge V E" (the last one wins);
//   - edge:    a well-formed "e u v", converted to 0-indexed (u-1, v-1);
//   - fatal:   a "p edge" or "e" line whose numeric fields do not parse.
//
// Edges may appear before the problem line. Edges whose endpoints fall outside
// [1, V] are dropped and counted in Instance.Dropped. A missing or zero vertex
// count is fatal. Any fatal condition aborts the load and no Instance is
// returned.
//
// Errors:
//
//	ErrFileNotFound   - Load was given a path that does not exist.
//	ErrMalformedInput - unparsable numbers, or an absent/zero vertex count.
//
// Usage:
//
//	inst, err := dimacs.Load("DSJC125.9.col")
//	if errors.Is(err, dimacs.ErrFileNotFound) { ... }
//	fmt.Println(inst.Graph.VertexCount(), inst.EdgeLines)
//
// Write emits the same format (1-indexed, one "e" line per distinct edge), so
// fixtures generated with the builder package round-trip through Load.
package dimacs
