// Package options provides configurable settings for building an ANIME
// instance (github.com/mikenye/anime.Instance).
//
// This package defines a functional options pattern, allowing callers to
// tune secondary knobs of anime.Build (index fan-out, floating-point
// epsilon) without changing Build's signature. The two required tolerances
// (distance_tolerance, angle_tolerance) remain ordinary positional
// parameters per spec.md §6; everything optional goes through a
// BuildOptionFunc.
package options

// BuildOptionFunc is a functional option used to configure optional
// parameters when building an ANIME instance. Functions that accept a
// BuildOptionFunc allow callers to customize behavior without adding
// parameters to Build's signature.
type BuildOptionFunc func(*BuildOptions)

// BuildOptions holds the configurable parameters for Build.
type BuildOptions struct {
	// Epsilon is a small non-negative slack applied, via the numeric
	// package's FloatGreaterThan/FloatLessThanOrEqualTo family, to every
	// tolerance-boundary comparison FindMatches makes: the angle-tolerance
	// and distance-tolerance checks in match.Find, and the 45° axis-branch
	// boundary in overlap.SharedLength. It keeps a candidate pair sitting
	// exactly on a tolerance edge from flipping accept/reject on
	// floating-point noise. Default: 0 (exact comparisons).
	Epsilon float64

	// NodeCapacity is the maximum number of entries per R*-tree node (the
	// "M" parameter from Beckmann, Kriegel, Schneider & Seeger). The minimum
	// fill is derived from it. Default: 10, matching the teacher's
	// RTree_M constant.
	NodeCapacity int
}

// DefaultBuildOptions returns the default configuration applied before any
// BuildOptionFunc is evaluated.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Epsilon:      0,
		NodeCapacity: 10,
	}
}

// Apply applies a set of functional options to defaults, in order, and
// returns the resulting BuildOptions.
func Apply(defaults BuildOptions, opts ...BuildOptionFunc) BuildOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
