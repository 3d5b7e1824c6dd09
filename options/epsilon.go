package options

// WithEpsilon returns a BuildOptionFunc that sets the Epsilon slack applied
// to FindMatches' tolerance-boundary comparisons (see BuildOptions.Epsilon).
//
// A negative epsilon is clamped to 0 (no adjustment).
func WithEpsilon(epsilon float64) BuildOptionFunc {
	return func(opts *BuildOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}

// WithNodeCapacity returns a BuildOptionFunc that overrides the R*-tree's
// maximum entries per node. Values less than 4 are clamped to 4, since the
// R*-tree split algorithm requires room for a minimum fill of at least 2
// entries per half after a split.
func WithNodeCapacity(capacity int) BuildOptionFunc {
	return func(opts *BuildOptions) {
		if capacity < 4 {
			capacity = 4
		}
		opts.NodeCapacity = capacity
	}
}
