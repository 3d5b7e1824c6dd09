// Package polyline represents a source or target geometry as an ordered
// sequence of vertices, and derives the per-segment and whole-line
// quantities (length, component segments) that package rtree indexes and
// package interpolate weights by.
//
// Grounded on tormol-AIS/geo/spatialObjects.go's Rectangle/Point helpers for
// the basic geometric accessor style, generalized from a single shape to an
// ordered vertex chain the way the teacher's linesegment package explodes a
// path into its component segments.
package polyline

import (
	"github.com/mikenye/anime/point"
	"github.com/mikenye/anime/segment"
)

// Polyline is an ordered sequence of vertices. A polyline with fewer than
// two vertices has no segments and zero length.
type Polyline []point.Point

// Segments returns the ordered line segments connecting consecutive
// vertices of p. A polyline with n vertices has n-1 segments.
func (p Polyline) Segments() []segment.Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]segment.Segment, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		segs = append(segs, segment.New(p[i], p[i+1]))
	}
	return segs
}

// Length returns the sum of the Euclidean lengths of p's component
// segments.
func (p Polyline) Length() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}
