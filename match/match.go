// Package match implements the core ANIME candidate-matching pass of
// spec.md §4.4: given a source and a target spatial index, find every
// (source segment, target segment) pair whose slopes, axis overlaps, and
// separation fall within tolerance, and accumulate the shared length each
// source polyline contributes to each target polyline.
//
// Grounded on original_source/rust/src/lib.rs's find_matches: the
// intersection-candidate traversal, the angle-tolerance pre-filter, the
// axis-overlap filter, the distance filter, and the shared-length
// accumulation-by-source-index-within-target all mirror that function
// line for line, translated from rstar's intersection_candidates_with_
// other_tree callback style to rtree.Index.Intersections' yield-func
// style. The ordered-by-target-index result map is grounded on the
// teacher's use of github.com/emirpasic/gods/trees/redblacktree as an
// ordered structure in linesegment/sweepline_statusstructure_rbt.go, in
// place of the original's std::collections::BTreeMap.
package match

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/anime/numeric"
	"github.com/mikenye/anime/overlap"
	"github.com/mikenye/anime/point"
	"github.com/mikenye/anime/rtree"
	"github.com/mikenye/anime/segment"
)

// Candidate is one source polyline's contribution to a target polyline's
// match set: the source polyline's index and the cumulative shared length
// between the two, in the target's units.
type Candidate struct {
	SourceIndex int
	SharedLen   float64
}

// Map holds, for each target polyline index that matched at least one
// source segment, the list of source-polyline candidates that matched it.
// Map iterates in ascending target-index order.
type Map struct {
	tree *rbt.Tree
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{tree: rbt.NewWithIntComparator()}
}

// Len returns the number of target indices with at least one candidate.
func (m *Map) Len() int {
	return m.tree.Size()
}

// Get returns the candidates matched to targetIndex, and whether any exist.
func (m *Map) Get(targetIndex int) ([]Candidate, bool) {
	v, found := m.tree.Get(targetIndex)
	if !found {
		return nil, false
	}
	return v.([]Candidate), true
}

// ForEach calls visit once per target index in ascending order, stopping
// early if visit returns false.
func (m *Map) ForEach(visit func(targetIndex int, candidates []Candidate) bool) {
	it := m.tree.Iterator()
	for it.Next() {
		if !visit(it.Key().(int), it.Value().([]Candidate)) {
			return
		}
	}
}

// Add adds sharedLen to the existing candidate for sourceIndex under
// targetIndex, or appends a new candidate if this source hasn't matched
// this target before. Exposed so callers (and tests) can build or merge a
// Map directly, outside of Find's tree-intersection traversal.
func (m *Map) Add(targetIndex, sourceIndex int, sharedLen float64) {
	existing, found := m.tree.Get(targetIndex)
	var candidates []Candidate
	if found {
		candidates = existing.([]Candidate)
	}
	for i := range candidates {
		if candidates[i].SourceIndex == sourceIndex {
			candidates[i].SharedLen += sharedLen
			m.tree.Put(targetIndex, candidates)
			return
		}
	}
	candidates = append(candidates, Candidate{SourceIndex: sourceIndex, SharedLen: sharedLen})
	m.tree.Put(targetIndex, candidates)
}

// Find runs the full candidate-matching pass between a source and a target
// index, returning the resulting Map. angleToleranceDeg and
// distanceTolerance are the two required tolerances from spec.md §4.2.
// epsilon is the slack applied to both tolerance comparisons and to the
// overlap solver's 45°-branch boundary. An angle difference within epsilon
// of angleToleranceDeg counts as equal to it and is rejected; a distance
// within epsilon of distanceTolerance counts as equal to it and is
// accepted.
func Find(sourceIdx, targetIdx *rtree.Index, angleToleranceDeg, distanceTolerance, epsilon float64) *Map {
	m := NewMap()
	sourceIdx.Intersections(targetIdx, func(cx, cy rtree.Entry) bool {
		logDebugf("candidate pair: source polyline %d, target polyline %d", cx.PolylineIndex, cy.PolylineIndex)

		xDeg := radiansToDegrees(math.Atan(cx.Slope))
		yDeg := radiansToDegrees(math.Atan(cy.Slope))
		if numeric.FloatGreaterThanOrEqualTo(math.Abs(xDeg-yDeg), angleToleranceDeg, epsilon) {
			return true
		}

		xbb := cx.TightEnvelope()
		ybb := cy.TightEnvelope()
		xOverlap, xOK := overlap.Overlap(overlap.Range{Lo: xbb.MinX, Hi: xbb.MaxX}, overlap.Range{Lo: ybb.MinX, Hi: ybb.MaxX})
		yOverlap, yOK := overlap.Overlap(overlap.Range{Lo: xbb.MinY, Hi: xbb.MaxY}, overlap.Range{Lo: ybb.MinY, Hi: ybb.MaxY})
		if !xOK && !yOK {
			return true
		}

		sx := segment.New(point.New(cx.A[0], cx.A[1]), point.New(cx.B[0], cx.B[1]))
		sy := segment.New(point.New(cy.A[0], cy.A[1]), point.New(cy.B[0], cy.B[1]))
		if numeric.FloatGreaterThan(sx.DistanceTo(sy), distanceTolerance, epsilon) {
			return true
		}

		known := point.New(cx.A[0], cx.A[1])
		sharedLen := overlap.SharedLength(xOverlap, xOK, yOverlap, yOK, known, cx.Slope, epsilon)
		m.Add(cy.PolylineIndex, cx.PolylineIndex, sharedLen)
		return true
	})
	return m
}

func radiansToDegrees(r float64) float64 {
	return r * 180.0 / math.Pi
}
