package report

import (
	"fmt"

	"github.com/katalvlaran/eqcolor/coloring"
	"github.com/katalvlaran/eqcolor/equitable"
	"github.com/katalvlaran/eqcolor/graph"
	"github.com/katalvlaran/eqcolor/validity"
)

// Input gathers the stage outputs of one run. Validity and Equity are
// required; Graph and Coloring only add context (sizes, color samples).
type Input struct {
	Validity *validity.Result
	Equity   *equitable.Report
	Graph    *graph.Graph
	Coloring coloring.Coloring
}

// Classify maps the three verdicts to an Outcome in the fixed priority
// order validity > equitability > color count.
func Classify(valid, equitable, correctK bool) Outcome {
	switch {
	case !valid:
		return Failed
	case !equitable:
		return PartialUnbalanced
	case !correctK:
		return PartialWrongK
	default:
		return Success
	}
}

// Assemble combines the stage outputs into a Report.
// Returns ErrMissingResult if either required result is nil.
func Assemble(in Input) (*Report, error) {
	if in.Validity == nil || in.Equity == nil {
		return nil, fmt.Errorf("%w: validity=%t equity=%t", ErrMissingResult, in.Validity != nil, in.Equity != nil)
	}
	v, e := in.Validity, in.Equity

	r := &Report{
		Outcome:           Classify(v.Valid, e.Equitable, e.CorrectK),
		Vertices:          in.Coloring.Len(),
		Valid:             v.Valid,
		Violations:        v.Violations,
		Equitable:         e.Equitable,
		ColorsUsed:        e.ColorsUsed,
		NumColorsUsed:     e.NumColorsUsed,
		CorrectK:          e.CorrectK,
		MinCount:          e.MinCount,
		MaxCount:          e.MaxCount,
		MinColor:          e.MinColor,
		MaxColor:          e.MaxColor,
		Distribution:      e.Distribution,
		CountDistribution: e.CountDistribution,
		Head:              in.Coloring.Head(SampleSize),
		Tail:              in.Coloring.Tail(SampleSize),
	}
	if e.HasExpectedK {
		k := e.ExpectedK
		r.ExpectedK = &k
	}
	if in.Graph != nil {
		r.Vertices = in.Graph.VertexCount()
		r.Edges = in.Graph.EdgeCount()
	}

	return r, nil
}
