// Package point defines the foundational geometric primitive used throughout
// anime: a planar point with float64 coordinates.
//
// # Overview
//
// Point is deliberately minimal: ANIME's matching kernel only ever needs
// vector subtraction, Euclidean distance, and epsilon-aware equality between
// points. Higher-level types ([github.com/mikenye/anime/segment].Segment,
// [github.com/mikenye/anime/polyline].Polyline) are built on top of it.
package point

import (
	"fmt"
	"math"

	"github.com/mikenye/anime/numeric"
)

// Point represents a coordinate in a planar, Euclidean coordinate system.
type Point struct {
	X float64
	Y float64
}

// New creates a new Point with the given coordinates.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Eq reports whether p and q are equal within epsilon.
func (p Point) Eq(q Point, epsilon float64) bool {
	return numeric.FloatEquals(p.X, q.X, epsilon) && numeric.FloatEquals(p.Y, q.Y, epsilon)
}

// String returns a human-readable "(x, y)" representation of p.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
