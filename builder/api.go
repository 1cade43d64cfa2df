// Package: eqcolor/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a draft, then freezes the draft into a *graph.Graph.
//   - Constructors reserve a block of vertex indices and emit edges inside it.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eqcolor/graph"
)

// Constructor appends one topology to the draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before reserving vertices.
//   - Emit edges only inside the block returned by d.reserve.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the graph is frozen.
type draft struct {
	n     int
	edges []graph.Edge
}

// reserve adds k fresh vertices and returns the index of the first one.
func (d *draft) reserve(k int) int {
	base := d.n
	d.n += k

	return base
}

// connect records the undirected edge {u, v}.
func (d *draft) connect(u, v int) {
	d.edges = append(d.edges, graph.Edge{U: u, V: v})
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no graph is returned on failure.
//
// Complexity: Σ cost of each constructor + O(V + E·log d) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: shuffle: %w", ErrNeedRandSource)
		}
		perm := cfg.rng.Perm(d.n)
		for i, e := range d.edges {
			d.edges[i] = graph.Edge{U: perm[e.U], V: perm[e.V]}
		}
	}

	g, err := graph.New(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}
