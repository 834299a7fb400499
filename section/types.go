package section

import (
	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/mesh"
)

// SegmentPointID uniquely identifies a SegmentPoint within one section.
type SegmentPointID string

// SegmentPoint is the concrete (x, y, z, connectionName) sample on a
// segment representing one trace's crossing, plus the topological links to
// other points of the same net.
type SegmentPoint struct {
	ID                  SegmentPointID
	SegmentID           mesh.SegmentID
	CapacityMeshNodeIDs [2]mesh.CellID
	X, Y                float64
	Z                   geom.Z
	ConnectionName      string

	// DirectlyConnectedSegmentPointIDs lists other points with the same
	// ConnectionName that share at least one incident cell with this point.
	DirectlyConnectedSegmentPointIDs []SegmentPointID
}

// UnravelSection is the bounded neighborhood the Unravel Solver searches
// over: a root cell, everything reachable within MutableHops+1 hops, and
// the read-only indices built from it.
type UnravelSection struct {
	RootNodeID  mesh.CellID
	MutableHops int

	AllNodeIDs       []mesh.CellID
	MutableNodeIDs   []mesh.CellID
	ImmutableNodeIDs []mesh.CellID

	MutableSegmentIDs []mesh.SegmentID

	SegmentPoints          map[SegmentPointID]*SegmentPoint
	SegmentPointsInNode    map[mesh.CellID][]SegmentPointID
	SegmentPointsInSegment map[mesh.SegmentID][]SegmentPointID
	SegmentPairsInNode     map[mesh.CellID][][2]SegmentPointID

	mutableSegmentSet map[mesh.SegmentID]struct{}
}

// IsMutableSegment reports whether id belongs to the section's mutable
// region. Operations touching points outside it must be rejected.
func (s *UnravelSection) IsMutableSegment(id mesh.SegmentID) bool {
	_, ok := s.mutableSegmentSet[id]

	return ok
}
