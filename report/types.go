package report

import (
	"errors"

	"github.com/katalvlaran/eqcolor/validity"
)

// Sentinel errors for report assembly and encoding.
var (
	// ErrMissingResult indicates Assemble was called without a validity
	// result or an equitability report.
	ErrMissingResult = errors.New("report: missing stage result")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// DefaultPreview is the number of violations Render shows by default.
const DefaultPreview = 5

// SampleSize is the number of leading and trailing vertex colors kept for
// display.
const SampleSize = 10

// Outcome is the final four-way classification.
type Outcome int

const (
	// Failed: the coloring is not proper.
	Failed Outcome = iota
	// PartialUnbalanced: proper but color classes differ by more than one.
	PartialUnbalanced
	// PartialWrongK: proper and equitable but the color count is wrong.
	PartialWrongK
	// Success: proper, equitable and using the expected number of colors.
	Success
)

// String returns the display name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "FAILED"
	case PartialUnbalanced:
		return "PARTIAL (unbalanced)"
	case PartialWrongK:
		return "PARTIAL (wrong-k)"
	case Success:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the outcome by its display name (JSON and YAML).
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Report is the verification outcome surface of one run.
// Violations holds the complete list; presentation layers truncate it.
type Report struct {
	Outcome           Outcome              `json:"outcome" yaml:"outcome"`
	Vertices          int                  `json:"vertices" yaml:"vertices"`
	Edges             int                  `json:"edges" yaml:"edges"`
	Valid             bool                 `json:"is_valid" yaml:"is_valid"`
	Violations        []validity.Violation `json:"violating_edges" yaml:"violating_edges"`
	Equitable         bool                 `json:"is_equitable" yaml:"is_equitable"`
	ColorsUsed        []int                `json:"colors_used" yaml:"colors_used"`
	NumColorsUsed     int                  `json:"num_colors_used" yaml:"num_colors_used"`
	ExpectedK         *int                 `json:"expected_k" yaml:"expected_k"`
	CorrectK          bool                 `json:"correct_k" yaml:"correct_k"`
	MinCount          int                  `json:"min_count" yaml:"min_count"`
	MaxCount          int                  `json:"max_count" yaml:"max_count"`
	MinColor          int                  `json:"min_color" yaml:"min_color"`
	MaxColor          int                  `json:"max_color" yaml:"max_color"`
	Distribution      map[int]int          `json:"distribution" yaml:"distribution"`
	CountDistribution []int                `json:"count_distribution" yaml:"count_distribution"`
	Head              []int                `json:"first_colors" yaml:"first_colors"`
	Tail              []int                `json:"last_colors" yaml:"last_colors"`
}

// NumViolations returns the number of violating edges.
func (r *Report) NumViolations() int {
	return len(r.Violations)
}
