// Package segment defines a 2D line segment, the basic unit indexed by
// package rtree and matched by package match: the piece of a polyline that
// runs between two consecutive vertices.
//
// Grounded on the teacher's linesegment.LineSegment (endpoint fields, slope
// and length accessors) and generalized to segment-to-segment distance the way
// tormol-AIS's geo.Rectangle.DistanceTo generalizes point distance to
// shapes.
package segment

import (
	"fmt"
	"math"

	"github.com/mikenye/anime/point"
	"github.com/mikenye/anime/rtree"
)

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B point.Point
}

// New returns a Segment from a to b.
func New(a, b point.Point) Segment {
	return Segment{A: a, B: b}
}

// Slope returns (B.Y-A.Y)/(B.X-A.X). A vertical segment (A.X == B.X) has
// slope +Inf (or -Inf, or NaN for a degenerate zero-length segment),
// mirroring spec.md §3's "vertical segments carry an explicit infinite
// slope" requirement.
func (s Segment) Slope() float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	if dx == 0 {
		if dy == 0 {
			return math.NaN()
		}
		return math.Copysign(math.Inf(1), dy)
	}
	return dy / dx
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// Envelope returns the segment's axis-aligned bounding rectangle.
func (s Segment) Envelope() rtree.Envelope {
	return rtree.Envelope{
		MinX: math.Min(s.A.X, s.B.X),
		MinY: math.Min(s.A.Y, s.B.Y),
		MaxX: math.Max(s.A.X, s.B.X),
		MaxY: math.Max(s.A.Y, s.B.Y),
	}
}

// DistanceTo returns the Euclidean distance between s and o: 0 if they
// intersect or touch, otherwise the shortest distance between any point on
// s and any point on o.
func (s Segment) DistanceTo(o Segment) float64 {
	if segmentsIntersect(s, o) {
		return 0
	}
	d := math.Inf(1)
	d = math.Min(d, pointToSegmentDistance(s.A, o))
	d = math.Min(d, pointToSegmentDistance(s.B, o))
	d = math.Min(d, pointToSegmentDistance(o.A, s))
	d = math.Min(d, pointToSegmentDistance(o.B, s))
	return d
}

func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.A, s.B)
}

// pointToSegmentDistance returns the shortest distance from p to the
// segment s, projecting p onto the line through s and clamping to s's
// endpoints.
func pointToSegmentDistance(p point.Point, s Segment) float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return p.DistanceTo(s.A)
	}
	t := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := point.New(s.A.X+t*dx, s.A.Y+t*dy)
	return p.DistanceTo(proj)
}

// segmentsIntersect reports whether the two segments share at least one
// point, using the standard orientation-and-bounding-box test.
func segmentsIntersect(s1, s2 Segment) bool {
	o1 := orientation(s1.A, s1.B, s2.A)
	o2 := orientation(s1.A, s1.B, s2.B)
	o3 := orientation(s2.A, s2.B, s1.A)
	o4 := orientation(s2.A, s2.B, s1.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(s1.A, s2.A, s1.B) {
		return true
	}
	if o2 == 0 && onSegment(s1.A, s2.B, s1.B) {
		return true
	}
	if o3 == 0 && onSegment(s2.A, s1.A, s2.B) {
		return true
	}
	if o4 == 0 && onSegment(s2.A, s1.B, s2.B) {
		return true
	}
	return false
}

// orientation returns 0 if p, q, r are collinear, 1 for clockwise, 2 for
// counterclockwise.
func orientation(p, q, r point.Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies on the segment p-r, given that p, q, r
// are already known to be collinear.
func onSegment(p, q, r point.Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}
