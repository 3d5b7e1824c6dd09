// Package anime implements Approximate Network Matching, Integration, and
// Enrichment: a geometric matching and attribute-transfer engine for two
// collections of planar polylines.
//
// Given a source collection and a target collection of polylines, an
// Instance finds, for each target, which source polylines are
// geometrically co-located with it within configurable angle and distance
// tolerances, estimates the shared length of each co-located pair, and
// transfers per-source scalar attributes onto targets using
// length-weighted interpolation in two modes: extensive (a total
// redistributed by source-length fraction) and intensive (a density
// averaged by target-length fraction).
//
// # Coordinate system
//
// anime operates entirely in a planar, Euclidean coordinate system.
// Geographic (non-projected) coordinates are out of scope; project inputs
// before building an Instance.
//
// # Lifecycle
//
// Build eagerly indexes both collections. FindMatches may be called at
// most once per Instance and populates its one-shot match set. The
// interpolation methods are read-only and may be called any number of
// times, concurrently, once FindMatches has succeeded.
package anime

import (
	"sync"

	"github.com/mikenye/anime/interpolate"
	"github.com/mikenye/anime/match"
	"github.com/mikenye/anime/options"
	"github.com/mikenye/anime/point"
	"github.com/mikenye/anime/polyline"
	"github.com/mikenye/anime/rtree"
)

// Instance holds the indexed source and target polylines for one matching
// session, plus the one-shot result of FindMatches once it has run.
//
// An Instance is safe for concurrent read-only use (interpolation calls)
// once FindMatches has returned successfully; matches is written exactly
// once, under mu, giving the happens-before relationship spec.md §5
// requires between that write and any later read.
type Instance struct {
	distanceTolerance float64
	angleTolerance    float64
	epsilon           float64

	sourceIndex *rtree.Index
	sourceLens  []float64

	targetIndex *rtree.Index
	targetLens  []float64

	mu      sync.Mutex
	matches *match.Map
}

// Build ingests a source and a target collection of polylines and eagerly
// bulk-loads an R*-tree over each collection's segments, per spec.md §3's
// lifecycle. Each polyline must have at least two points. distanceTolerance
// and angleTolerance (degrees) must be non-negative; they are used later by
// FindMatches, not validated here.
func Build(sourcePolylines, targetPolylines [][]point.Point, distanceTolerance, angleTolerance float64, opts ...options.BuildOptionFunc) (*Instance, error) {
	built := options.Apply(options.DefaultBuildOptions(), opts...)

	sourceEntries, sourceLens := indexEntries(sourcePolylines, 0)
	targetEntries, targetLens := indexEntries(targetPolylines, distanceTolerance)

	sourceIndex, err := rtree.Build(sourceEntries, built.NodeCapacity)
	if err != nil {
		return nil, err
	}
	targetIndex, err := rtree.Build(targetEntries, built.NodeCapacity)
	if err != nil {
		return nil, err
	}

	return &Instance{
		distanceTolerance: distanceTolerance,
		angleTolerance:    angleTolerance,
		epsilon:           built.Epsilon,
		sourceIndex:       sourceIndex,
		sourceLens:        sourceLens,
		targetIndex:       targetIndex,
		targetLens:        targetLens,
	}, nil
}

// indexEntries builds the rtree.Entry slice and the per-polyline length
// array for one collection. envelopeExpansion is added to every segment's
// envelope before indexing (0 for the source, distance_tolerance for the
// target), per spec.md §3's "target segment records use a bounding
// rectangle expanded outward by the distance tolerance" requirement.
func indexEntries(polylines [][]point.Point, envelopeExpansion float64) ([]rtree.Entry, []float64) {
	lens := make([]float64, len(polylines))
	var entries []rtree.Entry
	for i, pts := range polylines {
		pl := polyline.Polyline(pts)
		lens[i] = pl.Length()
		for _, seg := range pl.Segments() {
			entries = append(entries, rtree.Entry{
				Envelope:      seg.Envelope().Expand(envelopeExpansion),
				A:             [2]float64{seg.A.X, seg.A.Y},
				B:             [2]float64{seg.B.X, seg.B.Y},
				PolylineIndex: i,
				Slope:         seg.Slope(),
			})
		}
	}
	return entries, lens
}

// FindMatches runs the candidate-matching pass between the source and
// target indexes and populates the Instance's one-shot match set. It may
// be called at most once per Instance; subsequent calls return
// ErrAlreadyMatched without modifying state.
func (inst *Instance) FindMatches() error {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	if inst.matches != nil {
		return ErrAlreadyMatched
	}
	inst.matches = match.Find(inst.sourceIndex, inst.targetIndex, inst.angleTolerance, inst.distanceTolerance, inst.epsilon)
	return nil
}

func (inst *Instance) snapshotMatches() *match.Map {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.matches
}

// InterpolateExtensive transfers y (indexed by source polyline, so
// len(y) must equal the source polyline count) onto targets as a
// length-weighted sum, per spec.md §4.5. Returns values and the target
// indices they correspond to, in ascending target-index order; a target
// absent from the matches map is simply absent from the result, not
// represented with a zero.
func (inst *Instance) InterpolateExtensive(y []float64) (values []float64, targetIndices []int, err error) {
	if len(y) != len(inst.sourceLens) {
		return nil, nil, ErrIncorrectLength
	}
	m := inst.snapshotMatches()
	if m == nil {
		return nil, nil, ErrMatchesNotFound
	}
	values, targetIndices = interpolate.Extensive(m, y, inst.sourceLens)
	return values, targetIndices, nil
}

// InterpolateIntensive transfers y (indexed by source polyline) onto
// targets as a length-weighted mean, per spec.md §4.5. Return shape
// matches InterpolateExtensive.
func (inst *Instance) InterpolateIntensive(y []float64) (values []float64, targetIndices []int, err error) {
	if len(y) != len(inst.sourceLens) {
		return nil, nil, ErrIncorrectLength
	}
	m := inst.snapshotMatches()
	if m == nil {
		return nil, nil, ErrMatchesNotFound
	}
	values, targetIndices = interpolate.Intensive(m, y, inst.targetLens)
	return values, targetIndices, nil
}

// MatchTriple is one accumulated (target, source) match, as returned by
// Instance.Matches.
type MatchTriple struct {
	TargetIndex int
	SourceIndex int
	SharedLen   float64
}

// Matches returns every accumulated (target_index, source_index,
// shared_len) triple, ordered by ascending target index then by the order
// candidates were first matched within that target.
func (inst *Instance) Matches() ([]MatchTriple, error) {
	m := inst.snapshotMatches()
	if m == nil {
		return nil, ErrMatchesNotFound
	}
	var triples []MatchTriple
	m.ForEach(func(targetIndex int, candidates []match.Candidate) bool {
		for _, c := range candidates {
			triples = append(triples, MatchTriple{TargetIndex: targetIndex, SourceIndex: c.SourceIndex, SharedLen: c.SharedLen})
		}
		return true
	})
	return triples, nil
}

// SourceLens returns the per-polyline Euclidean length array for the
// source collection, dense over [0, N_s).
func (inst *Instance) SourceLens() []float64 {
	out := make([]float64, len(inst.sourceLens))
	copy(out, inst.sourceLens)
	return out
}

// TargetLens returns the per-polyline Euclidean length array for the
// target collection, dense over [0, N_t).
func (inst *Instance) TargetLens() []float64 {
	out := make([]float64, len(inst.targetLens))
	copy(out, inst.targetLens)
	return out
}
