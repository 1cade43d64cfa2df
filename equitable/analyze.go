package equitable

import (
	"sort"

	"github.com/katalvlaran/eqcolor/coloring"
)

// Analyze computes the color distribution of c and derives the balance and
// color-count verdicts. c is only read.
// Returns ErrOptionViolation for invalid options.
func Analyze(c coloring.Coloring, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dist := Count(c)
	r := &Report{
		Distribution:      dist,
		ColorsUsed:        make([]int, 0, len(dist)),
		CountDistribution: make([]int, 0, len(dist)),
		NumColorsUsed:     len(dist),
		ExpectedK:         o.ExpectedK,
		HasExpectedK:      o.ExpectedK > 0,
	}
	for color, n := range dist {
		r.ColorsUsed = append(r.ColorsUsed, color)
		r.CountDistribution = append(r.CountDistribution, n)
	}
	sort.Ints(r.ColorsUsed)
	sort.Ints(r.CountDistribution)

	// Degenerate empty coloring keeps the zero values.
	if k := len(r.ColorsUsed); k > 0 {
		r.MinColor, r.MaxColor = r.ColorsUsed[0], r.ColorsUsed[k-1]
		r.MinCount, r.MaxCount = r.CountDistribution[0], r.CountDistribution[k-1]
	}
	r.Equitable = r.Spread() <= 1
	r.CorrectK = !r.HasExpectedK || r.NumColorsUsed == r.ExpectedK

	return r, nil
}

// Count returns the occurrence count of every color in c.
// Complexity: O(n).
func Count(c coloring.Coloring) Distribution {
	dist := make(Distribution)
	for _, color := range c {
		dist[color]++
	}

	return dist
}

// Classes returns, for every color, the ascending 0-indexed vertices that
// carry it.
// Complexity: O(n).
func Classes(c coloring.Coloring) map[int][]int {
	out := make(map[int][]int)
	for v, color := range c {
		out[color] = append(out[color], v)
	}

	return out
}
