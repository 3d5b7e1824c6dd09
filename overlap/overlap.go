// Package overlap computes the one-dimensional axis overlaps between two
// segments' bounding rectangles and reconstructs the shared length along
// whichever segment's line best explains the overlap, per spec.md §4.4 and
// §4.5.
//
// Grounded directly on original_source/rust/src/overlap.rs: Range mirrors
// Rust's std::ops::Range<f64>, Overlap mirrors overlap_range, and
// PointsFromXOverlap/PointsFromYOverlap mirror solve_no_y_overlap/
// solve_no_x_overlap. The "known point" used to reconstruct the line is
// always taken from the source segment (the first endpoint of the geometry
// the caller names x), matching the original's use of cx (the source
// tree's entry) rather than cy (the target) as the line of record.
package overlap

import (
	"math"

	"github.com/mikenye/anime/numeric"
	"github.com/mikenye/anime/point"
)

// Range is a closed interval [Lo, Hi] on one axis.
type Range struct {
	Lo, Hi float64
}

// Overlap returns the intersection of a and b, and whether one exists. Two
// ranges that merely touch at an endpoint are considered overlapping (a
// degenerate, zero-width range), matching the Rust original's
// half-open-range comparison at the boundary.
func Overlap(a, b Range) (Range, bool) {
	if a.Hi < b.Lo || b.Hi < a.Lo {
		return Range{}, false
	}
	return Range{Lo: math.Max(a.Lo, b.Lo), Hi: math.Min(a.Hi, b.Hi)}, true
}

// PointsFromXOverlap reconstructs the two endpoints of the portion of the
// known line (passing through `known` with the given slope) that spans
// xOverlap, by solving y = slope*x + b for b using `known` and then
// evaluating at xOverlap's bounds.
//
// Used when the shared x-extent is the more reliable signal (the line is
// closer to horizontal than vertical).
func PointsFromXOverlap(xOverlap Range, known point.Point, slope float64) (point.Point, point.Point) {
	b := known.Y - slope*known.X
	y1 := slope*xOverlap.Lo + b
	y2 := slope*xOverlap.Hi + b
	return point.New(xOverlap.Lo, y1), point.New(xOverlap.Hi, y2)
}

// PointsFromYOverlap reconstructs the two endpoints of the portion of the
// known line that spans yOverlap, solving x = (y-b)/slope. For a vertical
// or degenerate (NaN) slope, x is pinned to known.X for both endpoints,
// since every point on a vertical line shares the same x.
//
// Used when the shared y-extent is the more reliable signal (the line is
// closer to vertical than horizontal).
func PointsFromYOverlap(yOverlap Range, known point.Point, slope float64) (point.Point, point.Point) {
	if math.IsInf(slope, 0) || math.IsNaN(slope) {
		return point.New(known.X, yOverlap.Lo), point.New(known.X, yOverlap.Hi)
	}
	b := known.Y - slope*known.X
	x1 := (yOverlap.Lo - b) / slope
	x2 := (yOverlap.Hi - b) / slope
	return point.New(x1, yOverlap.Lo), point.New(x2, yOverlap.Hi)
}

// SharedLength returns the length of overlap between two segments along
// whichever axis the source segment's slope favors: the x-extent overlap
// when the source line runs closer to horizontal (|atan(slope)| in degrees
// <= 45, within epsilon), the y-extent overlap otherwise (including
// infinite and NaN slopes). Returns 0 if the
// favored overlap doesn't exist, even when the other axis does overlap —
// matching the original's branch-exclusive behavior. epsilon is the same
// tolerance anime.Build's WithEpsilon option configures, so a source line
// sitting exactly on the 45° boundary doesn't flip branches on floating-point
// noise.
func SharedLength(xOverlap Range, xOK bool, yOverlap Range, yOK bool, known point.Point, slope, epsilon float64) float64 {
	degrees := math.Abs(radiansToDegrees(math.Atan(slope)))
	if numeric.FloatLessThanOrEqualTo(degrees, 45.0, epsilon) {
		if !xOK {
			return 0
		}
		p1, p2 := PointsFromXOverlap(xOverlap, known, slope)
		return p1.DistanceTo(p2)
	}
	if !yOK {
		return 0
	}
	p1, p2 := PointsFromYOverlap(yOverlap, known, slope)
	return p1.DistanceTo(p2)
}

func radiansToDegrees(r float64) float64 {
	return r * 180.0 / math.Pi
}
