// Package numeric provides floating-point comparison helpers used by anime's
// geometry and matching kernels to apply distance and angle tolerances
// without being tripped up by floating-point precision error.
//
// # Overview
//
// Every configurable tolerance comparison ANIME makes at match time — the
// angle-tolerance and distance-tolerance checks in match.Find, and the
// overlap solver's 45° axis-branch boundary in overlap.SharedLength — goes
// through the functions in this package, so that "within tolerance" has one
// consistent, epsilon-aware definition across the matching engine and the
// overlap solver. The spatial index (rtree) itself does no tolerance
// comparisons of its own; it compares stored envelopes directly, since its
// overlap tests are structural, not user-configurable tolerances.
package numeric
