// Package equitable provides tunable options and error definitions for
// analyzing the balance of a coloring.
package equitable

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("equitable: invalid option supplied")

// Option configures Analyze via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Analyze is invoked.
type Option func(*Options)

// Options holds the parameters of an analysis.
type Options struct {
	// ExpectedK is the number of colors the coloring must use.
	// Zero means no expectation.
	ExpectedK int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no color-count expectation.
func DefaultOptions() Options {
	return Options{}
}

// WithExpectedK sets the expected number of distinct colors.
//
//	k > 0:  expect exactly k colors
//	k == 0: no expectation (CorrectK is always true)
//	k < 0:  invalid option → ErrOptionViolation
func WithExpectedK(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: ExpectedK cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.ExpectedK = k
	}
}

// Distribution maps a color id to the number of vertices carrying it.
type Distribution map[int]int

// Report is the outcome of Analyze.
type Report struct {
	Distribution      Distribution
	ColorsUsed        []int // distinct colors, ascending
	CountDistribution []int // class sizes, ascending
	NumColorsUsed     int
	MinCount          int
	MaxCount          int
	MinColor          int
	MaxColor          int
	ExpectedK         int
	HasExpectedK      bool
	Equitable         bool
	CorrectK          bool
}

// Spread returns MaxCount - MinCount.
func (r *Report) Spread() int {
	return r.MaxCount - r.MinCount
}
