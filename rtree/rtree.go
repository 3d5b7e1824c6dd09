// Package rtree implements a bulk-loaded R*-tree over axis-aligned segment
// envelopes, used to index the source and target segment collections in
// spec.md §4.3.
//
// The node layout, insertion algorithm (ChooseSubtree / OverflowTreatment /
// forced reinsertion / Split / ChooseSplitAxis) is adapted from
// tormol-AIS/storage/rStarTree.go, generalized from <lat,long> boat points to
// arbitrary (PolylineIndex, Slope)-tagged segment envelopes, and extended
// with a tree-against-tree intersection traversal (Intersections) that the
// teacher's single-tree FindWithin did not need.
//
// References (carried from the teacher):
//   - Guttman, "R-Trees: A Dynamic Index Structure for Spatial Searching" (1984)
//   - Beckmann, Kriegel, Schneider, Seeger, "The R*-tree: An Efficient and
//     Robust Access Method for Points and Rectangles" (1990)
package rtree

import (
	"errors"
	"math"
	"sort"

	"github.com/google/btree"
)

// DefaultMaxEntries is the default maximum number of entries per node ("M"),
// matching tormol-AIS's RTree_M.
const DefaultMaxEntries = 10

// minEntriesFor returns the minimum fill ("m") for a tree with the given
// max-entries ("M"), at ~40% of M as recommended by Beckmann et al. and
// used verbatim as tormol-AIS's RTree_m/RTree_M ratio.
func minEntriesFor(maxEntries int) int {
	m := (maxEntries * 2) / 5
	if m < 2 {
		m = 2
	}
	return m
}

// ErrEmptyBulkLoad is returned by Build when called with no entries.
var ErrEmptyBulkLoad = errors.New("rtree: cannot build an index from zero entries")

// Envelope is an axis-aligned bounding rectangle.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest envelope containing both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX),
		MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX),
		MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// Area returns the envelope's area.
func (e Envelope) Area() float64 {
	return (e.MaxX - e.MinX) * (e.MaxY - e.MinY)
}

// Margin returns the envelope's half-perimeter (sum of width and height),
// used by ChooseSplitAxis as the "margin" goodness function from the R*-tree
// paper.
func (e Envelope) Margin() float64 {
	return (e.MaxX - e.MinX) + (e.MaxY - e.MinY)
}

// Overlaps reports whether e and o intersect (touching counts as overlap).
func (e Envelope) Overlaps(o Envelope) bool {
	return e.MinX <= o.MaxX && o.MinX <= e.MaxX &&
		e.MinY <= o.MaxY && o.MinY <= e.MaxY
}

// OverlapArea returns the area of the intersection of e and o, or 0 if they
// don't overlap.
func (e Envelope) OverlapArea(o Envelope) float64 {
	if !e.Overlaps(o) {
		return 0
	}
	ix := Envelope{
		MinX: math.Max(e.MinX, o.MinX),
		MinY: math.Max(e.MinY, o.MinY),
		MaxX: math.Min(e.MaxX, o.MaxX),
		MaxY: math.Min(e.MaxY, o.MaxY),
	}
	return ix.Area()
}

// Expand returns a copy of e grown outward by d on every side.
func (e Envelope) Expand(d float64) Envelope {
	return Envelope{
		MinX: e.MinX - d,
		MinY: e.MinY - d,
		MaxX: e.MaxX + d,
		MaxY: e.MaxY + d,
	}
}

// Entry is one indexed segment: its envelope (used for the tree's internal
// structure, possibly Expand-ed by a distance tolerance), the exact
// endpoints of the underlying segment (used by callers that need the tight,
// unexpanded rectangle or precise segment geometry), and metadata mirroring
// spec.md §3's segment record (owning polyline index, slope).
type Entry struct {
	Envelope      Envelope
	A, B          [2]float64 // exact segment endpoints (x, y)
	PolylineIndex int
	Slope         float64
}

// TightEnvelope recomputes the unexpanded bounding rectangle from the
// entry's exact endpoints, per spec.md §4.4's requirement that the
// angle/overlap filter re-derive tight rectangles rather than reuse a
// target index's expanded envelope.
func (e Entry) TightEnvelope() Envelope {
	return Envelope{
		MinX: math.Min(e.A[0], e.B[0]),
		MinY: math.Min(e.A[1], e.B[1]),
		MaxX: math.Max(e.A[0], e.B[0]),
		MaxY: math.Max(e.A[1], e.B[1]),
	}
}

type node struct {
	parent  *node
	entries []indexedEntry
	height  int // 0 == leaf
}

func (n *node) isLeaf() bool { return n.height == 0 }

// indexedEntry is an internal node entry: either a leaf entry (Leaf set) or
// an internal entry pointing at a child node, paired with the envelope that
// bounds it.
type indexedEntry struct {
	envelope Envelope
	child    *node
	leaf     *Entry
	dist     float64
}

func (ie indexedEntry) center() (float64, float64) {
	return (ie.envelope.MinX + ie.envelope.MaxX) / 2, (ie.envelope.MinY + ie.envelope.MaxY) / 2
}

// Index is a bulk-loaded R*-tree over Entry envelopes.
type Index struct {
	root       *node
	maxEntries int
	minEntries int
	size       int
}

// Size returns the number of entries stored in the index.
func (idx *Index) Size() int { return idx.size }

// Build constructs an Index from entries by sequential R*-tree insertion
// (tormol-AIS's insert/overflowTreatment/reInsert/split pipeline run once
// per entry during construction). The index does not support further
// insertion or deletion after Build returns, matching spec.md §3's
// "index is built once per instance" invariant.
func Build(entries []Entry, maxEntries int) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyBulkLoad
	}
	if maxEntries < 4 {
		maxEntries = DefaultMaxEntries
	}
	idx := &Index{
		maxEntries: maxEntries,
		minEntries: minEntriesFor(maxEntries),
		root: &node{
			entries: make([]indexedEntry, 0, maxEntries+1),
			height:  0,
		},
	}
	for i := range entries {
		e := entries[i]
		logDebugf("inserting entry %d/%d (polyline %d)", i+1, len(entries), e.PolylineIndex)
		idx.insert(indexedEntry{envelope: e.Envelope, leaf: &e}, 0, true)
		idx.size++
	}
	return idx, nil
}

// insert places newEntry into the subtree rooted such that it ends up at
// the given height, performing overflow treatment (forced reinsertion, then
// split) and MBR adjustment up to the root. Mirrors tormol-AIS's
// (*RTree).insert.
func (idx *Index) insert(newEntry indexedEntry, height int, first bool) {
	n := idx.chooseSubtree(newEntry.envelope, height)
	if newEntry.child != nil {
		newEntry.child.parent = n
	}
	n.entries = append(n.entries, newEntry)
	if len(n.entries) >= idx.maxEntries+1 {
		split, nn := idx.overflowTreatment(n, first)
		if split {
			if nn.height == idx.root.height {
				newRoot := &node{
					entries: make([]indexedEntry, 0, idx.maxEntries+1),
					height:  idx.root.height + 1,
				}
				nEntry := indexedEntry{envelope: recalcEnvelope(n.entries), child: n}
				nnEntry := indexedEntry{envelope: recalcEnvelope(nn.entries), child: nn}
				newRoot.entries = append(newRoot.entries, nEntry, nnEntry)
				n.parent = newRoot
				nn.parent = newRoot
				idx.root = newRoot
				return
			}
			idx.insert(indexedEntry{envelope: recalcEnvelope(nn.entries), child: nn}, nn.height+1, true)
		}
	}
	for n.height < idx.root.height {
		p, pIdx := n.parent, parentEntryIndex(n)
		p.entries[pIdx].envelope = recalcEnvelope(n.entries)
		n = p
	}
}

// overflowTreatment handles an overfull node n: when first is set and n is
// not the root it performs forced reinsertion; otherwise it splits n.
// Entries being reinserted carry first=false, so an overflow they cause is
// split; the per-level history of earlier reinsertions is not tracked.
func (idx *Index) overflowTreatment(n *node, first bool) (split bool, nn *node) {
	if first && n.height < idx.root.height {
		idx.forcedReinsert(n)
		return false, nil
	}
	return true, idx.split(n)
}

// forcedReinsert removes the entries farthest from n's MBR center and
// reinserts them, per the R*-tree paper's "forced reinsert" step (tormol-AIS
// reInsert). The removed entries are reinserted starting with the one
// nearest the center and ending with the farthest.
func (idx *Index) forcedReinsert(n *node) {
	p, pIdx := n.parent, parentEntryIndex(n)
	cx, cy := p.entries[pIdx].center()
	for i := range n.entries {
		ex, ey := n.entries[i].center()
		dx, dy := ex-cx, ey-cy
		n.entries[i].dist = math.Sqrt(dx*dx + dy*dy)
	}
	sort.Slice(n.entries, func(i, j int) bool { return n.entries[i].dist > n.entries[j].dist })

	p30 := (idx.maxEntries * 3) / 10
	if p30 < 1 {
		p30 = 1
	}
	toReinsert := append([]indexedEntry(nil), n.entries[:p30]...)
	n.entries = append([]indexedEntry(nil), n.entries[p30:]...)
	p.entries[pIdx].envelope = recalcEnvelope(n.entries)

	for k := len(toReinsert) - 1; k >= 0; k-- {
		height := n.height
		idx.insert(toReinsert[k], height, false)
	}
}

// split partitions an overfull node's M+1 entries into two nodes using the
// R*-tree's ChooseSplitAxis / ChooseSplitIndex algorithm.
func (idx *Index) split(n *node) *node {
	axis := idx.chooseSplitAxis(n)
	k := idx.chooseSplitIndex(n, axis)

	nn := &node{parent: n.parent, height: n.height}
	nn.entries = append(nn.entries, n.entries[k:]...)
	n.entries = n.entries[:k]
	for _, e := range nn.entries {
		if e.child != nil {
			e.child.parent = nn
		}
	}
	return nn
}

// chooseSplitAxis sorts n's entries by each axis in turn and picks the axis
// that minimizes the sum of margins across all valid distributions (S in
// the R*-tree paper), mirroring tormol-AIS's chooseSplitAxis.
func (idx *Index) chooseSplitAxis(n *node) int {
	byX := sortedByAxis(n.entries, 0)
	byY := sortedByAxis(n.entries, 1)

	marginSum := func(sorted []indexedEntry) float64 {
		sum := 0.0
		d := idx.maxEntries - 2*idx.minEntries + 2
		for k := 1; k <= d; k++ {
			split := idx.minEntries - 1 + k
			g1 := recalcEnvelope(sorted[:split])
			g2 := recalcEnvelope(sorted[split:])
			sum += g1.Margin() + g2.Margin()
		}
		return sum
	}

	sx := marginSum(byX)
	sy := marginSum(byY)
	if sx <= sy {
		n.entries = byX
		return 0
	}
	n.entries = byY
	return 1
}

// chooseSplitIndex picks, among the valid distributions of the
// axis-sorted entries, the one minimizing overlap (ties broken by minimum
// total area), mirroring tormol-AIS's overlap/area tie-break inside
// chooseSplitAxis.
func (idx *Index) chooseSplitIndex(n *node, axis int) int {
	d := idx.maxEntries - 2*idx.minEntries + 2
	bestK := idx.minEntries - 1 + 1
	bestOverlap := -1.0
	bestArea := -1.0
	for k := 1; k <= d; k++ {
		split := idx.minEntries - 1 + k
		g1 := recalcEnvelope(n.entries[:split])
		g2 := recalcEnvelope(n.entries[split:])
		overlap := g1.OverlapArea(g2)
		area := g1.Area() + g2.Area()
		if bestOverlap < 0 || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestOverlap = overlap
			bestArea = area
			bestK = split
		}
	}
	return bestK
}

// chooseSubtree descends from the root to the node at the given height best
// suited to hold r, minimizing overlap enlargement (when children are
// leaves) or area enlargement (otherwise), mirroring tormol-AIS's
// chooseSubtree.
func (idx *Index) chooseSubtree(r Envelope, height int) *node {
	n := idx.root
	for !n.isLeaf() && n.height > height {
		pointsToLeaves := n.height == 1
		best := 0
		bestDiff := math.Inf(1)
		for i, e := range n.entries {
			var diff float64
			if pointsToLeaves {
				diff = overlapEnlargement(n.entries, i, r)
			} else {
				diff = e.envelope.Union(r).Area() - e.envelope.Area()
			}
			if diff < bestDiff {
				bestDiff = diff
				best = i
			} else if diff == bestDiff && n.entries[i].envelope.Area() < n.entries[best].envelope.Area() {
				best = i
			}
		}
		n = n.entries[best].child
	}
	return n
}

// overlapEnlargement returns how much the total overlap between sibling i
// and its siblings would grow if sibling i's envelope were enlarged to
// include r.
func overlapEnlargement(siblings []indexedEntry, i int, r Envelope) float64 {
	before, after := 0.0, 0.0
	enlarged := siblings[i].envelope.Union(r)
	for j, s := range siblings {
		if j == i {
			continue
		}
		before += siblings[i].envelope.OverlapArea(s.envelope)
		after += enlarged.OverlapArea(s.envelope)
	}
	return after - before
}

// recalcEnvelope returns the envelope bounding all of entries.
func recalcEnvelope(entries []indexedEntry) Envelope {
	e := entries[0].envelope
	for _, o := range entries[1:] {
		e = e.Union(o.envelope)
	}
	return e
}

// parentEntryIndex returns the index of n within its parent's entries.
func parentEntryIndex(n *node) int {
	for i, e := range n.parent.entries {
		if e.child == n {
			return i
		}
	}
	panic("rtree: node not found in its own parent (tree invariant broken)")
}

// sortedByAxis returns a copy of entries sorted by the min coordinate of
// the given axis (0 = x, 1 = y), ties broken by the max coordinate then by
// original position for a stable, deterministic order.
//
// Built atop a github.com/google/btree.BTreeG with a custom LessFunc, the
// same pattern linesegment/sweepline_eventqueue.go and
// linesegment/sweepline_statusstructure.go use to maintain an ordered
// working set, in place of tormol-AIS's plain sort.Sort(byLat(...)).
func sortedByAxis(entries []indexedEntry, axis int) []indexedEntry {
	type keyed struct {
		e   indexedEntry
		pos int
	}
	less := func(a, b keyed) bool {
		var aMin, aMax, bMin, bMax float64
		if axis == 0 {
			aMin, aMax = a.e.envelope.MinX, a.e.envelope.MaxX
			bMin, bMax = b.e.envelope.MinX, b.e.envelope.MaxX
		} else {
			aMin, aMax = a.e.envelope.MinY, a.e.envelope.MaxY
			bMin, bMax = b.e.envelope.MinY, b.e.envelope.MaxY
		}
		if aMin != bMin {
			return aMin < bMin
		}
		if aMax != bMax {
			return aMax < bMax
		}
		return a.pos < b.pos // stable tie-break; btree requires a strict weak order
	}
	tree := btree.NewG(32, less)
	for i, e := range entries {
		tree.ReplaceOrInsert(keyed{e: e, pos: i})
	}
	out := make([]indexedEntry, 0, len(entries))
	tree.Ascend(func(k keyed) bool {
		out = append(out, k.e)
		return true
	})
	return out
}

// Intersections calls yield once for every pair (a, b) of entries — a from
// idx, b from other — whose stored envelopes overlap, per spec.md §4.3's
// tree-against-tree traversal requirement. Iteration stops early if yield
// returns false.
//
// This extends tormol-AIS's single-tree FindWithin/searchChildren recursion
// (descend into children whose envelope overlaps a query rectangle) to a
// simultaneous descent of two trees: at each step, every pair of children
// (one from each side) whose envelopes overlap is recursed into, until both
// sides reach leaves.
func (idx *Index) Intersections(other *Index, yield func(a, b Entry) bool) {
	if idx == nil || other == nil || idx.root == nil || other.root == nil {
		return
	}
	intersectNodes(idx.root, other.root, yield)
}

func intersectNodes(a, b *node, yield func(x, y Entry) bool) bool {
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			if !ea.envelope.Overlaps(eb.envelope) {
				continue
			}
			switch {
			case ea.leaf != nil && eb.leaf != nil:
				if !yield(*ea.leaf, *eb.leaf) {
					return false
				}
			case ea.leaf != nil && eb.leaf == nil:
				if !intersectLeafAgainstNode(*ea.leaf, eb.child, yield) {
					return false
				}
			case ea.leaf == nil && eb.leaf != nil:
				if !intersectNodeAgainstLeaf(ea.child, *eb.leaf, yield) {
					return false
				}
			default:
				if !intersectNodes(ea.child, eb.child, yield) {
					return false
				}
			}
		}
	}
	return true
}

func intersectLeafAgainstNode(leaf Entry, n *node, yield func(x, y Entry) bool) bool {
	for _, e := range n.entries {
		if !leaf.Envelope.Overlaps(e.envelope) {
			continue
		}
		if e.leaf != nil {
			if !yield(leaf, *e.leaf) {
				return false
			}
		} else if !intersectLeafAgainstNode(leaf, e.child, yield) {
			return false
		}
	}
	return true
}

func intersectNodeAgainstLeaf(n *node, leaf Entry, yield func(x, y Entry) bool) bool {
	for _, e := range n.entries {
		if !e.envelope.Overlaps(leaf.Envelope) {
			continue
		}
		if e.leaf != nil {
			if !yield(*e.leaf, leaf) {
				return false
			}
		} else if !intersectNodeAgainstLeaf(e.child, leaf, yield) {
			return false
		}
	}
	return true
}
