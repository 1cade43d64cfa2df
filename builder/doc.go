// Package builder generates deterministic graph fixtures for the coloring
// verifiers: classic topologies with known chromatic structure and seeded
// random graphs in the style of the DIMACS DSJC benchmark family.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...): resolves options, runs constructors in
//     order and returns an immutable *graph.Graph.
//   - Topology constructors (Constructor closures):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols)
//     – CompleteBipartite(n1, n2), CompleteMultipartite(k, size)
//     – RandomSparse(n, p): G(n,p) sampling, e.g. RandomSparse(125, 0.9) for a
//     DSJC125.9-like instance.
//   - Options (BuilderOption):
//     – WithSeed(seed), WithRand(r): RNG for stochastic constructors.
//     – WithShuffle(): relabel vertices with a seeded random permutation.
//
// Composition:
//
//	Each constructor occupies a fresh block of vertex indices placed after
//	the vertices added by earlier constructors, so BuildGraph(nil, Cycle(3),
//	Path(2)) yields the disjoint union C3 + P2 over vertices 0..4.
//
// Guarantees:
//
//   - Determinism: same constructors, order, options and seed ⇒ identical graph.
//   - Constructors never panic; they return errors wrapping the sentinels in
//     errors.go. Option constructors panic on nil arguments.
//   - Documented complexity per constructor.
//
// Known colorings (useful when writing verification tests):
//
//	Path/even Cycle/Grid/CompleteBipartite: 2-colorable by parity or side.
//	Complete(n): needs n colors, one vertex each (trivially equitable).
//	CompleteMultipartite(k, s): color = index / s is proper and equitable.
package builder
