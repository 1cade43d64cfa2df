// Package equitable computes the color-class distribution of a coloring and
// decides whether it is balanced and uses the expected number of colors.
//
// What
//
//   - Distribution: color id → number of vertices carrying it.
//   - Equitable iff MaxCount - MinCount <= 1, the defining property of an
//     equitable coloring (class sizes differ by at most one).
//   - CorrectK iff the number of distinct colors used equals the expected k.
//     When no expectation is supplied CorrectK is vacuously true.
//   - Supplementary statistics: sorted ColorsUsed, sorted CountDistribution,
//     and the color range MinColor..MaxColor.
//
// Analyze looks only at the coloring; it does not know about edges. Pair it
// with package validity for the properness half of the verdict.
//
// Edge cases
//
//	An empty coloring yields zero colors, MinCount = MaxCount = 0 and
//	Equitable = true. A single-color coloring has MinCount = MaxCount = len(c).
//
// Options
//
//	WithExpectedK(k): k > 0 sets the expectation, k == 0 means "none",
//	k < 0 is recorded and surfaced as ErrOptionViolation.
//
// Complexity: O(n + k·log k) time, O(k) memory for n vertices and k colors.
package equitable
