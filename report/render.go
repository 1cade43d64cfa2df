package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a machine-readable or human encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name (case-insensitive).
// Returns ErrUnknownFormat for anything but text, json or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	preview int
}

// WithPreview sets how many violations Render lists; n <= 0 restores
// DefaultPreview.
func WithPreview(n int) RenderOption {
	return func(o *renderOptions) {
		if n > 0 {
			o.preview = n
		}
	}
}

const rule = "=================================================="

// Render writes the human-readable report to w.
func Render(w io.Writer, r *Report, opts ...RenderOption) error {
	o := renderOptions{preview: DefaultPreview}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	writeValidity(&b, r, o.preview)
	writeEquity(&b, r)
	writeAnalysis(&b, r)

	fmt.Fprintf(&b, "\n%s\nFINAL RESULT\n%s\n", rule, rule)
	fmt.Fprintf(&b, "%s: %s\n", r.Outcome, verdict(r.Outcome))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	return nil
}

// Encode writes r in the given format. FormatText delegates to Render.
func Encode(w io.Writer, r *Report, f Format, opts ...RenderOption) error {
	switch f {
	case FormatText:
		return Render(w, r, opts...)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeValidity(b *strings.Builder, r *Report, preview int) {
	if r.Valid {
		b.WriteString("VALIDITY: PASSED\n   All adjacent vertices have different colors\n")
		return
	}
	shown := r.Violations
	more := ""
	if len(shown) > preview {
		shown, more = shown[:preview], "..."
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = v.String()
	}
	fmt.Fprintf(b, "VALIDITY: FAILED\n   Found %d invalid edges: [%s]%s\n",
		len(r.Violations), strings.Join(parts, ", "), more)
}

func writeEquity(b *strings.Builder, r *Report) {
	if r.Equitable {
		b.WriteString("EQUITABLE: PASSED (color counts differ by <= 1)\n")
	} else {
		b.WriteString("EQUITABLE: FAILED (color counts differ by > 1)\n")
	}
	switch {
	case r.ExpectedK == nil:
		fmt.Fprintf(b, "COLOR COUNT: NOT CHECKED (%d colors, no expectation)\n", r.NumColorsUsed)
	case r.CorrectK:
		fmt.Fprintf(b, "COLOR COUNT: CORRECT (%d colors)\n", r.NumColorsUsed)
	default:
		fmt.Fprintf(b, "COLOR COUNT: WRONG (got %d, expected %d)\n", r.NumColorsUsed, *r.ExpectedK)
	}
}

func writeAnalysis(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "\n%s\nCOLORING ANALYSIS\n%s\n", rule, rule)
	fmt.Fprintf(b, "Total vertices: %d\n", r.Vertices)
	fmt.Fprintf(b, "Colors used: %d\n", r.NumColorsUsed)
	if r.ExpectedK != nil {
		fmt.Fprintf(b, "Expected colors (K): %d\n", *r.ExpectedK)
	} else {
		b.WriteString("Expected colors (K): -\n")
	}
	if r.NumColorsUsed > 0 {
		fmt.Fprintf(b, "Color range: %d to %d\n", r.MinColor, r.MaxColor)
	}
	fmt.Fprintf(b, "\nColor distribution:\n")
	fmt.Fprintf(b, "  Min vertices per color: %d\n", r.MinCount)
	fmt.Fprintf(b, "  Max vertices per color: %d\n", r.MaxCount)
	fmt.Fprintf(b, "  Difference: %d\n", r.MaxCount-r.MinCount)
	fmt.Fprintf(b, "\nFirst %d vertex colors: %v\n", SampleSize, r.Head)
	fmt.Fprintf(b, "Last %d vertex colors: %v\n", SampleSize, r.Tail)
}

func verdict(o Outcome) string {
	switch o {
	case Success:
		return "Valid, equitable, and correct number of colors!"
	case PartialWrongK:
		return "Valid and equitable but wrong color count"
	case PartialUnbalanced:
		return "Valid but not equitable"
	default:
		return "Invalid coloring"
	}
}
