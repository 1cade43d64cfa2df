package verify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/eqcolor/coloring"
	"github.com/katalvlaran/eqcolor/dimacs"
	"github.com/katalvlaran/eqcolor/equitable"
	"github.com/katalvlaran/eqcolor/report"
	"github.com/katalvlaran/eqcolor/validity"
)

// Verifier runs verification pipelines. It is safe for concurrent use;
// cached graph instances are shared read-only between runs.
type Verifier struct {
	log         *slog.Logger
	concurrency int
	cache       *lru.Cache[string, *dimacs.Instance]
	loads       singleflight.Group
}

// NewVerifier builds a Verifier from opts.
func NewVerifier(opts ...Option) (*Verifier, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache, err := lru.New[string, *dimacs.Instance](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("verify: graph cache: %w", err)
	}

	return &Verifier{
		log:         o.logger,
		concurrency: o.concurrency,
		cache:       cache,
	}, nil
}

// CacheLen reports how many graph instances are currently cached.
func (v *Verifier) CacheLen() int {
	return v.cache.Len()
}

// Run executes one verification described by cfg.
// Stage errors are returned wrapped with the stage name; ctx is checked
// between stages.
func (v *Verifier) Run(ctx context.Context, cfg Config) (*report.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := v.log.With("graph", cfg.GraphPath)

	inst, err := v.instance(cfg.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("verify: load graph: %w", err)
	}
	n := inst.Graph.VertexCount()
	log.Debug("graph ready", "vertices", n, "edges", inst.Graph.EdgeCount())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := readColoring(cfg)
	if err != nil {
		return nil, fmt.Errorf("verify: parse coloring: %w", err)
	}
	log.Debug("coloring parsed", "length", c.Len())
	if cfg.TruncateExtra && c.Len() > n {
		log.Warn("truncating coloring to vertex count", "length", c.Len(), "vertices", n)
		c = c.Truncate(n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vres, err := validity.Check(inst.Graph, c)
	if err != nil {
		return nil, fmt.Errorf("verify: validity: %w", err)
	}
	log.Debug("validity checked", "edges", vres.EdgesChecked, "violations", vres.Count())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eq, err := equitable.Analyze(c, equitable.WithExpectedK(cfg.ExpectedK))
	if err != nil {
		return nil, fmt.Errorf("verify: equitability: %w", err)
	}

	r, err := report.Assemble(report.Input{Validity: vres, Equity: eq, Graph: inst.Graph, Coloring: c})
	if err != nil {
		return nil, fmt.Errorf("verify: report: %w", err)
	}
	log.Info("verification finished",
		"outcome", r.Outcome.String(),
		"violations", r.NumViolations(),
		"colors", r.NumColorsUsed,
		"spread", eq.Spread())

	return r, nil
}

// RunBatch verifies every cfg concurrently, at most WithConcurrency at a
// time, and returns the reports in input order. The first failure cancels
// the remaining runs and is returned alone.
func (v *Verifier) RunBatch(ctx context.Context, cfgs []Config) ([]*report.Report, error) {
	out := make([]*report.Report, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	for i := range cfgs {
		i := i
		g.Go(func() error {
			r, err := v.Run(gctx, cfgs[i])
			if err != nil {
				return fmt.Errorf("verify: candidate %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// instance returns the cached graph for path, loading it at most once per
// concurrent miss.
func (v *Verifier) instance(path string) (*dimacs.Instance, error) {
	key := filepath.Clean(path)
	if inst, ok := v.cache.Get(key); ok {
		return inst, nil
	}

	res, err, _ := v.loads.Do(key, func() (interface{}, error) {
		if inst, ok := v.cache.Get(key); ok {
			return inst, nil
		}
		inst, err := dimacs.Load(key)
		if err != nil {
			return nil, err
		}
		v.warnLoad(key, inst)
		v.cache.Add(key, inst)
		return inst, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*dimacs.Instance), nil
}

func (v *Verifier) warnLoad(path string, inst *dimacs.Instance) {
	log := v.log.With("graph", path)
	if inst.Skipped > 0 {
		log.Warn("skipped unrecognized lines", "count", inst.Skipped)
	}
	if inst.Dropped > 0 {
		log.Warn("dropped out-of-range edges", "count", inst.Dropped)
	}
	if inst.Declared.Edges != inst.EdgeLines {
		log.Warn("edge count differs from header", "declared", inst.Declared.Edges, "parsed", inst.EdgeLines)
	}
	log.Debug("graph loaded", "vertices", inst.Declared.Vertices, "edge_lines", inst.EdgeLines)
}

func readColoring(cfg Config) (coloring.Coloring, error) {
	if cfg.ColoringPath == "" {
		return coloring.Parse(cfg.ColoringText)
	}
	f, err := os.Open(cfg.ColoringPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return coloring.ParseReader(f)
}
