package mesh

import (
	"math"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/meshid"
)

// boundaryEpsilon absorbs floating-point drift accumulated over repeated
// bisection of the board bounds; two coordinates within this distance are
// treated as touching.
const boundaryEpsilon = 1e-9

// EdgeSet is the result of BuildEdges: the derived Segment records plus the
// bipartite adjacency between cells and segments, as consumed by the
// Section Builder.
type EdgeSet struct {
	Segments           []*Segment
	NodeToSegmentIDs   map[CellID][]SegmentID
	SegmentToNodeIDs   map[SegmentID][2]CellID
}

// BuildEdges derives the implicit edge relation over cells: two cells are
// adjacent when they share a positive-length axis-aligned boundary and
// their available layers overlap (spec.md §4.2 "Edge derivation"). Adjacent
// pairs are recorded once each as a Segment.
func BuildEdges(cells []*Cell) *EdgeSet {
	ids := meshid.NewGenerator("S")
	es := &EdgeSet{
		NodeToSegmentIDs: make(map[CellID][]SegmentID, len(cells)),
		SegmentToNodeIDs: make(map[SegmentID][2]CellID),
	}

	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a, b := cells[i], cells[j]
			if !a.AvailableZ.Overlaps(b.AvailableZ) {
				continue
			}

			seg, ok := sharedBoundary(a.Rect, b.Rect)
			if !ok {
				continue
			}

			s := &Segment{
				ID:                  SegmentID(ids.Next()),
				CapacityMeshNodeIDs: [2]CellID{a.ID, b.ID},
				A:                   seg.A,
				B:                   seg.B,
			}
			es.Segments = append(es.Segments, s)
			es.SegmentToNodeIDs[s.ID] = s.CapacityMeshNodeIDs
			es.NodeToSegmentIDs[a.ID] = append(es.NodeToSegmentIDs[a.ID], s.ID)
			es.NodeToSegmentIDs[b.ID] = append(es.NodeToSegmentIDs[b.ID], s.ID)
		}
	}

	return es
}

// sharedBoundary returns the positive-length axis-aligned segment shared by
// a and b's edges, if any. Quad-tree neighbors may sit at different
// subdivision depths, so the shared run is the overlap of the touching
// edges, not necessarily either edge's full length.
func sharedBoundary(a, b geom.Rect) (geom.Segment2D, bool) {
	if approxEqual(a.MaxX(), b.MinX()) || approxEqual(b.MaxX(), a.MinX()) {
		x := a.MaxX()
		if approxEqual(b.MaxX(), a.MinX()) {
			x = a.MinX()
		}
		lo := math.Max(a.MinY(), b.MinY())
		hi := math.Min(a.MaxY(), b.MaxY())
		if hi-lo > boundaryEpsilon {
			return geom.Segment2D{A: geom.Point{X: x, Y: lo}, B: geom.Point{X: x, Y: hi}}, true
		}
	}

	if approxEqual(a.MaxY(), b.MinY()) || approxEqual(b.MaxY(), a.MinY()) {
		y := a.MaxY()
		if approxEqual(b.MaxY(), a.MinY()) {
			y = a.MinY()
		}
		lo := math.Max(a.MinX(), b.MinX())
		hi := math.Min(a.MaxX(), b.MaxX())
		if hi-lo > boundaryEpsilon {
			return geom.Segment2D{A: geom.Point{X: lo, Y: y}, B: geom.Point{X: hi, Y: y}}, true
		}
	}

	return geom.Segment2D{}, false
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) <= boundaryEpsilon
}
