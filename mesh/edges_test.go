package mesh

import (
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/stretchr/testify/require"
)

func TestBuildEdges_AdjacentCellsShareOneSegment(t *testing.T) {
	left := &Cell{ID: "L", Rect: geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Both()}
	right := &Cell{ID: "R", Rect: geom.Rect{Center: geom.Point{X: 10, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Both()}
	far := &Cell{ID: "F", Rect: geom.Rect{Center: geom.Point{X: 100, Y: 100}, Width: 10, Height: 10}, AvailableZ: geom.Both()}

	es := BuildEdges([]*Cell{left, right, far})
	require.Len(t, es.Segments, 1)

	seg := es.Segments[0]
	require.ElementsMatch(t, []CellID{"L", "R"}, seg.CapacityMeshNodeIDs[:])
	require.InDelta(t, 5.0, seg.A.X, 1e-9)
	require.InDelta(t, 5.0, seg.B.X, 1e-9)

	require.Len(t, es.NodeToSegmentIDs["L"], 1)
	require.Len(t, es.NodeToSegmentIDs["R"], 1)
	require.Empty(t, es.NodeToSegmentIDs["F"])

	nodes := es.SegmentToNodeIDs[seg.ID]
	require.ElementsMatch(t, []CellID{"L", "R"}, nodes[:])
}

func TestBuildEdges_NoOverlappingLayersMeansNoEdge(t *testing.T) {
	left := &Cell{ID: "L", Rect: geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Single(geom.ZTop)}
	right := &Cell{ID: "R", Rect: geom.Rect{Center: geom.Point{X: 10, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Single(geom.ZBottom)}

	es := BuildEdges([]*Cell{left, right})
	require.Empty(t, es.Segments)
}

// TestBuildEdges_SegmentEndpointsAreMutuallyAdjacent is property #8: every
// segment's two capacityMeshNodeIds must actually be the adjacent pair
// BuildEdges derived it from, on both sides of the relation.
func TestBuildEdges_SegmentEndpointsAreMutuallyAdjacent(t *testing.T) {
	a := &Cell{ID: "A", Rect: geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Both()}
	b := &Cell{ID: "B", Rect: geom.Rect{Center: geom.Point{X: 10, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Both()}
	c := &Cell{ID: "C", Rect: geom.Rect{Center: geom.Point{X: 0, Y: 10}, Width: 10, Height: 10}, AvailableZ: geom.Both()}

	es := BuildEdges([]*Cell{a, b, c})
	require.NotEmpty(t, es.Segments)

	for _, seg := range es.Segments {
		n1, n2 := seg.CapacityMeshNodeIDs[0], seg.CapacityMeshNodeIDs[1]
		require.Contains(t, es.NodeToSegmentIDs[n1], seg.ID, "segment %s missing from NodeToSegmentIDs[%s]", seg.ID, n1)
		require.Contains(t, es.NodeToSegmentIDs[n2], seg.ID, "segment %s missing from NodeToSegmentIDs[%s]", seg.ID, n2)

		nodes := es.SegmentToNodeIDs[seg.ID]
		require.ElementsMatch(t, []CellID{n1, n2}, nodes[:])
	}
}

func TestBuildEdges_DifferentDepthNeighborsShareOverlapOnly(t *testing.T) {
	// Small cell spans y=[-5,5]; large neighbor spans y=[0,20] — they should
	// only share the overlapping run y=[0,5].
	small := &Cell{ID: "S", Rect: geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 10, Height: 10}, AvailableZ: geom.Both()}
	large := &Cell{ID: "G", Rect: geom.Rect{Center: geom.Point{X: 10, Y: 10}, Width: 10, Height: 20}, AvailableZ: geom.Both()}

	es := BuildEdges([]*Cell{small, large})
	require.Len(t, es.Segments, 1)

	seg := es.Segments[0]
	loY, hiY := seg.A.Y, seg.B.Y
	if loY > hiY {
		loY, hiY = hiY, loY
	}
	require.InDelta(t, 0.0, loY, 1e-9)
	require.InDelta(t, 5.0, hiY, 1e-9)
}
