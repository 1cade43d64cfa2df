// Package report assembles the validity and equitability results of one
// verification run into a single verdict and renders it for people (text)
// or machines (JSON, YAML).
//
// Classification
//
// Four mutually exclusive outcomes, evaluated strictly in this order:
//
//  1. not proper                         → FAILED
//  2. proper, not equitable              → PARTIAL (unbalanced)
//  3. proper, equitable, wrong color count → PARTIAL (wrong-k)
//  4. proper, equitable, correct count   → SUCCESS
//
// Validity dominates equitability, which dominates the color count: the
// balance of an improper coloring carries no meaning.
//
// Presentation
//
// Report keeps the complete violation list. Render shows only a bounded
// prefix (DefaultPreview, or WithPreview(n)) followed by "..." when more
// exist, plus the first and last SampleSize vertex colors.
package report
