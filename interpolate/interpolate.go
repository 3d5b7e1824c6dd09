// Package interpolate implements ANIME's length-weighted attribute
// transfer, spec.md §4.5: given a populated match.Map and the source and
// target polyline length arrays, redistribute a source attribute vector
// onto targets in either an extensive (length-weighted sum) or intensive
// (length-weighted mean) sense.
//
// Grounded on original_source/rust/src/interpolate.rs's formulas, adapted
// from Rust's iterator-fold style to an explicit loop over match.Map's
// ordered target keys.
package interpolate

import (
	"math"

	"github.com/mikenye/anime/match"
)

// Extensive computes, for each target index present as a key in m (in
// ascending order), the length-weighted sum
//
//	Ŷ_j = Σ_{c in C_j} Y[c.SourceIndex] · (c.SharedLen / sourceLens[c.SourceIndex])
//
// A zero (or non-finite) sourceLens entry contributes 0 rather than
// propagating a non-finite term, per spec.md §4.5 and §7.
func Extensive(m *match.Map, y, sourceLens []float64) (values []float64, targetIndices []int) {
	m.ForEach(func(targetIndex int, candidates []match.Candidate) bool {
		sum := 0.0
		for _, c := range candidates {
			sourceLen := sourceLens[c.SourceIndex]
			if sourceLen == 0 {
				continue
			}
			term := y[c.SourceIndex] * (c.SharedLen / sourceLen)
			if !math.IsNaN(term) && !math.IsInf(term, 0) {
				sum += term
			}
		}
		values = append(values, sum)
		targetIndices = append(targetIndices, targetIndex)
		return true
	})
	return values, targetIndices
}

// Intensive computes, for each target index present as a key in m (in
// ascending order), the length-weighted mean
//
//	Ŷ_j = (Σ_{c in C_j} Y[c.SourceIndex] · c.SharedLen) / (Σ_{c in C_j} c.SharedLen)
//
// using unnormalized weights (c.SharedLen rather than c.SharedLen /
// targetLens[j]) so the result is well-defined even when targetLens[j] is
// 0 — the targetLens[j] factor cancels between numerator and denominator.
// Returns 0 for a target whose total weight is 0.
func Intensive(m *match.Map, y, targetLens []float64) (values []float64, targetIndices []int) {
	m.ForEach(func(targetIndex int, candidates []match.Candidate) bool {
		var numerator, denominator float64
		for _, c := range candidates {
			numerator += y[c.SourceIndex] * c.SharedLen
			denominator += c.SharedLen
		}
		result := 0.0
		if denominator > 0 {
			result = numerator / denominator
		}
		values = append(values, result)
		targetIndices = append(targetIndices, targetIndex)
		return true
	})
	return values, targetIndices
}
