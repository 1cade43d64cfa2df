// Package eqcolor verifies equitable vertex colorings of graphs read from
// DIMACS edge lists.
//
// 🚀 What does eqcolor check?
//
//	Given a graph G = (V, E) and a coloring c: V → ℕ, a run answers three
//	questions, in this priority order:
//		• Validity: no edge joins two vertices of the same color
//		• Equitability: color class sizes differ by at most one
//		• Color count: exactly K distinct colors are used (when K is given)
//
// and classifies the result as FAILED, PARTIAL (unbalanced),
// PARTIAL (wrong-k) or SUCCESS.
//
// Packages:
//
//	graph/    : immutable undirected graph over vertices 0..n-1
//	dimacs/   : DIMACS "p edge" reader and writer
//	coloring/ : whitespace-separated coloring parser
//	validity/ : exhaustive monochromatic-edge check
//	equitable/: color distribution and balance analysis
//	report/   : outcome classification, text/JSON/YAML rendering
//	verify/   : config-driven runs, graph cache, batch fan-out
//	builder/  : deterministic fixture generators (paths, wheels, G(n,p), …)
//	cmd/eqcolor: the command-line front end
//
// Quick example (path 1-2-3):
//
//	1───2───3      colors 0 1 0  → SUCCESS
//	               colors 0 0 1  → FAILED, violation (1, 2, 0)
//
//	go install github.com/katalvlaran/eqcolor/cmd/eqcolor@latest
package eqcolor
