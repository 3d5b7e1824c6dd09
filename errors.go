package anime

import "errors"

// Error policy: only sentinel values are exported; callers branch on them
// with errors.Is. Sentinels are never formatted with caller-supplied values
// at the definition site, grounded on katalvlaran-lvlath/builder/errors.go.

// ErrAlreadyMatched is returned by (*Instance).FindMatches when called more
// than once on the same instance.
var ErrAlreadyMatched = errors.New("anime: find_matches already called on this instance")

// ErrMatchesNotFound is returned by the interpolation methods when called
// before FindMatches has succeeded.
var ErrMatchesNotFound = errors.New("anime: matches not found; call FindMatches first")

// ErrIncorrectLength is returned by the interpolation methods when the
// supplied attribute vector's length disagrees with the source polyline
// count.
var ErrIncorrectLength = errors.New("anime: attribute vector length does not match source polyline count")
