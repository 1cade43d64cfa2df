// Package verify sequences one complete verification run:
//
//	load graph (dimacs) → parse coloring → validity.Check →
//	equitable.Analyze → report.Assemble
//
// A run is described by a Config, which can be decoded from YAML
// (LoadConfig) and is validated with go-playground/validator before any
// file is touched.
//
// Verifier keeps an LRU cache of loaded graph instances keyed by path, so
// many candidate colorings can be checked against the same graph without
// re-reading it. Concurrent misses for one path share a single load.
// RunBatch fans candidates out over a bounded errgroup and returns the
// reports in input order.
//
// Verifier is the only package of the module that logs. It logs through a
// caller-supplied *slog.Logger (WithLogger); the default discards.
package verify
